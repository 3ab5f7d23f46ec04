// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package xslices

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtAndLast(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Equal(t, 3, At(s, -1))
	assert.Equal(t, 1, At(s, 0))
	assert.Equal(t, 3, Last(s))
}

func TestFillSlice(t *testing.T) {
	s := make([]float32, 7)
	FillSlice(s, 2)
	assert.Equal(t, []float32{2, 2, 2, 2, 2, 2, 2}, s)
	FillSlice([]int(nil), 1)
}

func TestIotaAndProduct(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, Iota(3, 3))
	assert.Equal(t, []float64{0.5, 1.5}, Iota(0.5, 2))
	assert.Equal(t, 24, Product([]int{2, 3, 4}))
	assert.Equal(t, 1, Product([]int{}))
	assert.Equal(t, 0, Product([]int{5, 0}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []float32{2, 4}, Map([]int{1, 2}, func(e int) float32 { return float32(2 * e) }))
}

func TestSlicesInDelta(t *testing.T) {
	assert.True(t, SlicesInDelta([][]float32{{1, 2}, {3, 4}}, [][]float32{{1, 2.001}, {3, 4}}, 0.01))
	assert.False(t, SlicesInDelta([][]float32{{1, 2}, {3, 4}}, [][]float32{{1, 2.1}, {3, 4}}, 0.01))
	assert.False(t, SlicesInDelta([][]float32{{1, 2}}, [][]float32{{1, 2}, {3, 4}}, 0.01))
	assert.False(t, SlicesInDelta([]float32{1}, []float64{1}, 0.01))
	assert.True(t, SlicesInDelta([]float64{math.NaN()}, []float64{math.NaN()}, 0))
	assert.True(t, SlicesInDelta([]int32{1, 2}, []int32{1, 2}, 0))
}
