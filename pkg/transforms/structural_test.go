// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"fmt"
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/ml/random"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestTriu(t *testing.T) {
	input := tensors.FromValue([][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	for _, tc := range []struct {
		diagonal int
		want     [][]float32
	}{
		{0, [][]float32{{1, 2, 3}, {0, 5, 6}, {0, 0, 9}}},
		{-1, [][]float32{{1, 2, 3}, {4, 5, 6}, {0, 8, 9}}},
		{1, [][]float32{{0, 2, 3}, {0, 0, 6}, {0, 0, 0}}},
		{-5, [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
	} {
		t.Run(fmt.Sprintf("diagonal=%d", tc.diagonal), func(t *testing.T) {
			output := tensors.FromShape(input.Shape())
			require.NoError(t, executor.Triu(input, output, tc.diagonal))
			assert.Equal(t, tc.want, output.Value())

			// Non-contiguous input and output.
			output = columnMajor(tensors.FromShape(input.Shape()))
			require.NoError(t, executor.Triu(columnMajor(input), output, tc.diagonal))
			assert.Equal(t, tc.want, output.Value())
		})
	}

	t.Run("rank-1", func(t *testing.T) {
		output := tensors.FromShape(shapes.Make(dtypes.Int32, 3))
		require.NoError(t, Triu(tensors.FromValue([]int32{1, 2, 3}), output, 1))
		assert.Equal(t, []int32{0, 2, 3}, output.Value())
	})

	t.Run("batched", func(t *testing.T) {
		input := tensors.FromFlatDataAndDimensions(xslices.Iota[int32](0, 8), 2, 2, 2)
		output := tensors.FromShape(input.Shape())
		require.NoError(t, executor.Triu(input, output, 0))
		assert.Equal(t, [][][]int32{{{0, 1}, {0, 3}}, {{4, 5}, {0, 7}}}, output.Value())
	})

	t.Run("in-place", func(t *testing.T) {
		x := tensors.FromValue([][]bool{{true, true}, {true, true}})
		require.NoError(t, executor.Triu(x, x, 0))
		assert.Equal(t, [][]bool{{true, true}, {false, true}}, x.Value())
	})

	t.Run("errors", func(t *testing.T) {
		requireKind(t, ErrShapeMismatch, executor.Triu(input, tensors.FromShape(shapes.Make(dtypes.Float32, 3, 2)), 0))
		requireKind(t, ErrShapeMismatch, executor.Triu(input, tensors.FromShape(shapes.Make(dtypes.Float64, 3, 3)), 0))
		requireKind(t, ErrShapeMismatch, executor.Triu(tensors.FromScalar[float32](1), tensors.FromScalar[float32](1), 0))
		requireKind(t, ErrInvalidArgument, executor.Triu(nil, input, 0))

		storage := tensors.FromShape(shapes.Make(dtypes.Float32, 2, 3))
		left, right := must.M1(storage.Narrow(1, 0, 2)), must.M1(storage.Narrow(1, 1, 2))
		requireKind(t, ErrInvalidArgument, executor.Triu(left, right, 0))
	})
}

// TestTriuBPAdjoint checks that the gradient only flows through the positions kept by Triu, and that
// TriuBP is the adjoint of Triu: <Triu(x), g> == <x, TriuBP(g)>.
func TestTriuBPAdjoint(t *testing.T) {
	const rows, cols = 3, 4
	rng := random.NewPhiloxWithSeed(42)
	x, g := make([]float64, rows*cols), make([]float64, rows*cols)
	for i := range x {
		x[i] = float64(rng.IntN(100)) - 50
		g[i] = float64(rng.IntN(100)) - 50
	}
	input := tensors.FromFlatDataAndDimensions(x, rows, cols)
	gradOutput := tensors.FromFlatDataAndDimensions(g, rows, cols)
	ones := filled(1.0, rows, cols)
	for diagonal := -(rows - 1); diagonal <= cols-1; diagonal++ {
		mask := tensors.FromShape(input.Shape())
		require.NoError(t, executor.TriuBP(input, ones, mask, diagonal))
		maskFlat := tensors.Flat[float64](mask)
		for i := range rows {
			for j := range cols {
				want := 0.0
				if j-i >= diagonal {
					want = 1
				}
				require.Equal(t, want, maskFlat[i*cols+j], "diagonal=%d, (%d, %d)", diagonal, i, j)
			}
		}

		forward := tensors.FromShape(input.Shape())
		require.NoError(t, executor.Triu(input, forward, diagonal))
		backward := tensors.FromShape(input.Shape())
		require.NoError(t, executor.TriuBP(input, gradOutput, backward, diagonal))
		var lhs, rhs float64
		for i := range x {
			lhs += tensors.Flat[float64](forward)[i] * g[i]
			rhs += x[i] * tensors.Flat[float64](backward)[i]
		}
		require.Equal(t, lhs, rhs, "diagonal=%d", diagonal)
	}

	requireKind(t, ErrShapeMismatch, executor.TriuBP(input, filled(1.0, cols, rows), tensors.FromShape(input.Shape()), 0))
}

func TestTrace(t *testing.T) {
	input := tensors.FromFlatDataAndDimensions(xslices.Iota[float64](1, 12), 2, 2, 3)
	output := tensors.FromShape(shapes.Make(dtypes.Float64, 2))
	require.NoError(t, executor.Trace(input, output))
	assert.Equal(t, []float64{1 + 5, 7 + 11}, output.Value())

	// Non-contiguous input: the transposed matrices have the same diagonals.
	transposed := must.M1(input.Transpose(0, 2, 1))
	require.NoError(t, executor.Trace(transposed, output))
	assert.Equal(t, []float64{6, 18}, output.Value())

	scalar := tensors.FromShape(shapes.Make(dtypes.Int64))
	require.NoError(t, Trace(tensors.FromValue([][]int64{{1, 2}, {3, 4}}), scalar))
	assert.Equal(t, int64(5), scalar.Value())

	half := tensors.FromShape(shapes.Make(dtypes.Float16))
	require.NoError(t, Trace(tensors.FromValue([][]float16.Float16{
		{float16.Fromfloat32(1), float16.Fromfloat32(2)},
		{float16.Fromfloat32(3), float16.Fromfloat32(4)},
	}), half))
	assert.Equal(t, float16.Fromfloat32(5), half.Value())

	requireKind(t, ErrShapeMismatch, executor.Trace(tensors.FromValue([]float32{1, 2}), scalar))
	requireKind(t, ErrShapeMismatch, executor.Trace(input, tensors.FromShape(shapes.Make(dtypes.Float64, 3))))
	requireKind(t, ErrUnsupportedDType, executor.Trace(tensors.FromValue([][]bool{{true}}),
		tensors.FromShape(shapes.Make(dtypes.Bool))))
}

func TestEye(t *testing.T) {
	output := tensors.FromShape(shapes.Make(dtypes.Float32, 2, 3))
	require.NoError(t, executor.Eye(output))
	assert.Equal(t, [][]float32{{1, 0, 0}, {0, 1, 0}}, output.Value())

	row := filled(int32(7), 3)
	require.NoError(t, Eye(row))
	assert.Equal(t, []int32{1, 0, 0}, row.Value())

	batch := columnMajor(filled(true, 2, 2, 2))
	require.NoError(t, executor.Eye(batch))
	assert.Equal(t, [][][]bool{{{true, false}, {false, true}}, {{true, false}, {false, true}}}, batch.Value())

	requireKind(t, ErrShapeMismatch, executor.Eye(tensors.FromScalar[float32](1)))
}

func TestInvertPermutation(t *testing.T) {
	output := tensors.FromShape(shapes.Make(dtypes.Int32, 3))
	require.NoError(t, executor.InvertPermutation(tensors.FromValue([]int32{2, 0, 1}), output))
	assert.Equal(t, []int32{1, 2, 0}, output.Value())

	floatOutput := tensors.FromShape(shapes.Make(dtypes.Float32, 3))
	require.NoError(t, InvertPermutation(tensors.FromValue([]float64{2, 0, 1}), floatOutput))
	assert.Equal(t, []float32{1, 2, 0}, floatOutput.Value())

	// In-place.
	perm := tensors.FromValue([]int64{1, 2, 3, 0})
	require.NoError(t, executor.InvertPermutation(perm, perm))
	assert.Equal(t, []int64{3, 0, 1, 2}, perm.Value())

	t.Run("self-inverse", func(t *testing.T) {
		rng := random.NewPhiloxWithSeed(7)
		for n := range 20 {
			p := tensors.FromShape(shapes.Make(dtypes.Int32, n))
			storeInts(random.Permutation(rng, n), p)
			inverse := tensors.FromShape(p.Shape())
			again := tensors.FromShape(p.Shape())
			require.NoError(t, executor.InvertPermutation(p, inverse))
			require.NoError(t, executor.InvertPermutation(inverse, again))
			require.True(t, p.Equal(again), "n=%d: %s != %s", n, p.GoStr(), again.GoStr())
		}
	})

	t.Run("errors", func(t *testing.T) {
		output := filled(int32(-1), 3)
		requireKind(t, ErrInvalidPermutation, executor.InvertPermutation(tensors.FromValue([]int32{0, 0, 1}), output))
		requireKind(t, ErrInvalidPermutation, executor.InvertPermutation(tensors.FromValue([]int32{0, 3, 1}), output))
		requireKind(t, ErrInvalidPermutation, executor.InvertPermutation(tensors.FromValue([]int32{0, -1, 1}), output))
		requireKind(t, ErrInvalidPermutation, executor.InvertPermutation(tensors.FromValue([]float32{0, 1.5, 2}), output))
		assert.Equal(t, []int32{-1, -1, -1}, output.Value(), "output changed by failed operation")

		requireKind(t, ErrShapeMismatch, executor.InvertPermutation(tensors.FromValue([][]int32{{0}}), output))
		requireKind(t, ErrShapeMismatch, executor.InvertPermutation(tensors.FromValue([]int32{0, 1}), output))
		requireKind(t, ErrUnsupportedDType, executor.InvertPermutation(tensors.FromValue([]bool{true}),
			tensors.FromShape(shapes.Make(dtypes.Int32, 1))))
		requireKind(t, ErrUnsupportedDType, executor.InvertPermutation(tensors.FromValue([]int32{0}),
			tensors.FromShape(shapes.Make(dtypes.Bool, 1))))
	})
}
