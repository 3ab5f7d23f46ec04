// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Listed from dtypes.Supported, plus Go's int.

package tensors

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// MultiDimensionSlice lists the Go types a Tensor can be converted to/from. There are no recursions in
// generics' constraint definitions, so we list up to 6 levels of slices. The non-generic FromAnyValue and
// Value work with any number of levels.
type MultiDimensionSlice interface {
	bool | float16.Float16 | bfloat16.BFloat16 | float32 | float64 | int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		[]bool | []float16.Float16 | []bfloat16.BFloat16 | []float32 | []float64 | []int | []int8 | []int16 | []int32 | []int64 | []uint8 | []uint16 | []uint32 | []uint64 |
		[][]bool | [][]float16.Float16 | [][]bfloat16.BFloat16 | [][]float32 | [][]float64 | [][]int | [][]int8 | [][]int16 | [][]int32 | [][]int64 | [][]uint8 | [][]uint16 | [][]uint32 | [][]uint64 |
		[][][]bool | [][][]float16.Float16 | [][][]bfloat16.BFloat16 | [][][]float32 | [][][]float64 | [][][]int | [][][]int8 | [][][]int16 | [][][]int32 | [][][]int64 | [][][]uint8 | [][][]uint16 | [][][]uint32 | [][][]uint64 |
		[][][][]bool | [][][][]float16.Float16 | [][][][]bfloat16.BFloat16 | [][][][]float32 | [][][][]float64 | [][][][]int | [][][][]int8 | [][][][]int16 | [][][][]int32 | [][][][]int64 | [][][][]uint8 | [][][][]uint16 | [][][][]uint32 | [][][][]uint64 |
		[][][][][]bool | [][][][][]float16.Float16 | [][][][][]bfloat16.BFloat16 | [][][][][]float32 | [][][][][]float64 | [][][][][]int | [][][][][]int8 | [][][][][]int16 | [][][][][]int32 | [][][][][]int64 | [][][][][]uint8 | [][][][][]uint16 | [][][][][]uint32 | [][][][][]uint64 |
		[][][][][][]bool | [][][][][][]float16.Float16 | [][][][][][]bfloat16.BFloat16 | [][][][][][]float32 | [][][][][][]float64 | [][][][][][]int | [][][][][][]int8 | [][][][][][]int16 | [][][][][][]int32 | [][][][][][]int64 | [][][][][][]uint8 | [][][][][][]uint16 | [][][][][][]uint32 | [][][][][][]uint64
}
