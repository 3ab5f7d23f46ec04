// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"fmt"
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	for _, numInputs := range []int{2, 3, 5} {
		for axis := range 3 {
			t.Run(fmt.Sprintf("%d-inputs-axis-%d", numInputs, axis), func(t *testing.T) {
				inputs := make([]*tensors.Tensor, numInputs)
				outputDims := []int{2, 3, 4}
				outputDims[axis] = 0
				next := float32(0)
				for i := range inputs {
					dims := []int{2, 3, 4}
					dims[axis] = i + 1
					size := xslices.Product(dims)
					inputs[i] = tensors.FromFlatDataAndDimensions(xslices.Iota(next, size), dims...)
					if i%2 == 1 {
						inputs[i] = columnMajor(inputs[i])
					}
					next += float32(size)
					outputDims[axis] += i + 1
				}
				output := tensors.FromShape(shapes.Make(dtypes.Float32, outputDims...))
				require.NoError(t, executor.Concat(inputs, output, axis))

				start := 0
				for i, input := range inputs {
					part := must.M1(output.Narrow(axis, start, i+1))
					require.True(t, input.Equal(part), "input #%d", i)
					start += i + 1
				}
			})
		}
	}

	t.Run("negative-axis", func(t *testing.T) {
		a := tensors.FromValue([][]int16{{1, 2}, {3, 4}})
		b := tensors.FromValue([][]int16{{5}, {6}})
		output := tensors.FromShape(shapes.Make(dtypes.Int16, 2, 3))
		require.NoError(t, executor.Concat([]*tensors.Tensor{a, b}, output, -1))
		assert.Equal(t, [][]int16{{1, 2, 5}, {3, 4, 6}}, output.Value())
	})

	t.Run("single-and-empty-inputs", func(t *testing.T) {
		a := tensors.FromValue([]bool{true, false})
		empty := tensors.FromShape(shapes.Make(dtypes.Bool, 0))
		output := tensors.FromShape(a.Shape())
		require.NoError(t, executor.Concat([]*tensors.Tensor{empty, a, empty}, output, 0))
		assert.Equal(t, []bool{true, false}, output.Value())
		output = tensors.FromShape(a.Shape())
		require.NoError(t, Concat([]*tensors.Tensor{a}, output, 0))
		assert.Equal(t, []bool{true, false}, output.Value())
	})

	t.Run("non-contiguous-output", func(t *testing.T) {
		a := tensors.FromValue([][]float64{{1, 2}})
		b := tensors.FromValue([][]float64{{3, 4}, {5, 6}})
		output := columnMajor(tensors.FromShape(shapes.Make(dtypes.Float64, 3, 2)))
		require.NoError(t, sequential.Concat([]*tensors.Tensor{a, b}, output, 0))
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, output.Value())
	})

	t.Run("errors", func(t *testing.T) {
		a := tensors.FromValue([][]int32{{1, 2}, {3, 4}})
		output := filled(int32(-1), 4, 2)
		requireKind(t, ErrDegenerateInput, executor.Concat(nil, output, 0))
		requireKind(t, ErrInvalidArgument, executor.Concat([]*tensors.Tensor{a, nil}, output, 0))
		requireKind(t, ErrInvalidArgument, executor.Concat([]*tensors.Tensor{a, a}, nil, 0))
		requireKind(t, ErrInvalidAxis, executor.Concat([]*tensors.Tensor{a, a}, output, 2))
		requireKind(t, ErrInvalidAxis, executor.Concat([]*tensors.Tensor{a, a}, output, -3))
		requireKind(t, ErrShapeMismatch, executor.Concat([]*tensors.Tensor{tensors.FromValue(int32(1))}, filled(int32(0), 1), 0))
		requireKind(t, ErrShapeMismatch, executor.Concat([]*tensors.Tensor{a, filled(int64(0), 2, 2)}, output, 0))
		requireKind(t, ErrShapeMismatch, executor.Concat([]*tensors.Tensor{a, filled(int32(0), 2, 3)}, output, 0))
		requireKind(t, ErrShapeMismatch, executor.Concat([]*tensors.Tensor{a, filled(int32(0), 2)}, output, 0))
		requireKind(t, ErrShapeMismatch, executor.Concat([]*tensors.Tensor{a, a}, filled(int32(0), 2, 4), 0))
		assert.Equal(t, [][]int32{{-1, -1}, {-1, -1}, {-1, -1}, {-1, -1}}, output.Value(), "output changed by failed operation")

		// Output overlapping an input.
		storage := filled(int32(0), 4, 2)
		top := must.M1(storage.Narrow(0, 0, 2))
		requireKind(t, ErrInvalidArgument, executor.Concat([]*tensors.Tensor{top, a}, storage, 0))
	})
}
