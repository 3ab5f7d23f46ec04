// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather(t *testing.T) {
	input := tensors.FromValue([][]float32{{1, 2}, {3, 4}, {5, 6}})

	t.Run("axis-0", func(t *testing.T) {
		output := tensors.FromShape(shapes.Make(dtypes.Float32, 3, 2))
		require.NoError(t, executor.Gather(input, tensors.FromValue([]int32{2, 0, 2}), output, 0))
		assert.Equal(t, [][]float32{{5, 6}, {1, 2}, {5, 6}}, output.Value())

		// Non-contiguous input and output give the same result.
		output = columnMajor(tensors.FromShape(output.Shape()))
		require.NoError(t, executor.Gather(columnMajor(input), tensors.FromValue([]int64{2, 0, 2}), output, 0))
		assert.Equal(t, [][]float32{{5, 6}, {1, 2}, {5, 6}}, output.Value())
	})

	t.Run("index-args", func(t *testing.T) {
		output := tensors.FromShape(shapes.Make(dtypes.Float32, 3, 1))
		require.NoError(t, Gather(input, nil, output, -1, 1))
		assert.Equal(t, [][]float32{{2}, {4}, {6}}, output.Value())
	})

	t.Run("rank-2-indices", func(t *testing.T) {
		output := tensors.FromShape(shapes.Make(dtypes.Float32, 3, 2, 2))
		require.NoError(t, executor.Gather(input, tensors.FromValue([][]float64{{0, 1}, {1, 0}}), output, 1))
		assert.Equal(t, [][][]float32{
			{{1, 2}, {2, 1}},
			{{3, 4}, {4, 3}},
			{{5, 6}, {6, 5}},
		}, output.Value())
	})

	t.Run("scalar-index", func(t *testing.T) {
		output := tensors.FromShape(shapes.Make(dtypes.Float32, 2))
		require.NoError(t, executor.Gather(input, tensors.FromScalar[int8](1), output, 0))
		assert.Equal(t, []float32{3, 4}, output.Value())
	})

	t.Run("inner-blocks", func(t *testing.T) {
		// Large enough blocks to be split among workers.
		input := tensors.FromFlatDataAndDimensions(xslices.Iota[int32](0, 4*5*6), 4, 5, 6)
		output := tensors.FromShape(shapes.Make(dtypes.Int32, 4, 2, 6))
		require.NoError(t, executor.Gather(input, nil, output, 1, 4, 0))
		want := tensors.FromShape(output.Shape())
		for a := range 4 {
			for k, index := range []int{4, 0} {
				for b := range 6 {
					tensors.Flat[int32](want)[want.Offset(a, k, b)] = tensors.Flat[int32](input)[input.Offset(a, index, b)]
				}
			}
		}
		assert.True(t, want.Equal(output), "got %s", output.GoStr())
	})

	t.Run("errors", func(t *testing.T) {
		output := filled(float32(-1), 2, 2)
		requireKind(t, ErrInvalidIndex, executor.Gather(input, tensors.FromValue([]int32{0, 3}), output, 0))
		requireKind(t, ErrInvalidIndex, executor.Gather(input, nil, output, 0, 0, -1))
		assert.Equal(t, [][]float32{{-1, -1}, {-1, -1}}, output.Value(), "output changed by failed operation")

		requireKind(t, ErrInvalidAxis, executor.Gather(input, nil, output, 2, 0))
		requireKind(t, ErrDegenerateInput, executor.Gather(input, nil, output, 0))
		requireKind(t, ErrInvalidArgument, executor.Gather(input, tensors.FromValue([]int32{0}), output, 0, 1))
		requireKind(t, ErrShapeMismatch, executor.Gather(input, nil, output, 0, 0))
		requireKind(t, ErrInvalidIndex, executor.Gather(input, tensors.FromValue([]float32{0.5, 1}), output, 0))
		requireKind(t, ErrInvalidArgument, executor.Gather(input, nil, input, 0, 0, 1, 2))
	})
}

func TestGatherND(t *testing.T) {
	// Indices [[2], [0], [1]] on [a, b, c] returns [c, a, b].
	output := tensors.FromShape(shapes.Make(dtypes.Float64, 3))
	require.NoError(t, executor.GatherND(tensors.FromValue([]float64{10, 20, 30}),
		tensors.FromValue([][]int32{{2}, {0}, {1}}), output))
	assert.Equal(t, []float64{30, 10, 20}, output.Value())

	matrix := tensors.FromValue([][]int32{{1, 2}, {3, 4}})
	elements := tensors.FromShape(shapes.Make(dtypes.Int32, 2))
	require.NoError(t, GatherND(matrix, tensors.FromValue([][]int32{{1, 0}, {0, 1}}), elements))
	assert.Equal(t, []int32{3, 2}, elements.Value())

	rows := tensors.FromShape(shapes.Make(dtypes.Int32, 1, 2))
	require.NoError(t, executor.GatherND(columnMajor(matrix), tensors.FromValue([][]int32{{1}}), rows))
	assert.Equal(t, [][]int32{{3, 4}}, rows.Value())

	// A single tuple (rank 1 indices) selects one sub-tensor.
	row := tensors.FromShape(shapes.Make(dtypes.Int32, 2))
	require.NoError(t, executor.GatherND(matrix, tensors.FromValue([]int64{0}), row))
	assert.Equal(t, []int32{1, 2}, row.Value())

	requireKind(t, ErrInvalidIndex, executor.GatherND(matrix, tensors.FromValue([][]int32{{0, 2}}), elements))
	requireKind(t, ErrShapeMismatch, executor.GatherND(matrix, tensors.FromValue([][]int32{{0, 0, 0}}), elements))
	requireKind(t, ErrShapeMismatch, executor.GatherND(matrix, tensors.FromValue([][]int32{{0, 0}}), elements))
	requireKind(t, ErrShapeMismatch, executor.GatherND(matrix, tensors.FromScalar[int32](0), elements))
}
