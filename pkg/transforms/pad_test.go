// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"fmt"
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/ml/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paddingsOf returns the paddings tensor for the given (before, after) pairs, one per axis.
func paddingsOf(pairs ...[2]int) *tensors.Tensor {
	if len(pairs) == 0 {
		return tensors.FromShape(shapes.Make(dtypes.Int32, 0, 2))
	}
	values := make([][]int32, len(pairs))
	for i, pair := range pairs {
		values[i] = []int32{int32(pair[0]), int32(pair[1])}
	}
	return tensors.FromValue(values)
}

// padOutput returns a new tensor for the result of padding input.
func padOutput(input *tensors.Tensor, pairs ...[2]int) *tensors.Tensor {
	dims := make([]int, input.Rank())
	for axis, dim := range input.Shape().Dimensions {
		dims[axis] = pairs[axis][0] + dim + pairs[axis][1]
	}
	return tensors.FromShape(shapes.Make(input.DType(), dims...))
}

func TestMirrorIndex(t *testing.T) {
	var reflect, symmetric []int
	for p := range 7 {
		reflect = append(reflect, mirrorIndex(PadReflect, p, 2, 3))
		symmetric = append(symmetric, mirrorIndex(PadSymmetric, p, 2, 3))
	}
	assert.Equal(t, []int{2, 1, 0, 1, 2, 1, 0}, reflect)
	assert.Equal(t, []int{1, 0, 0, 1, 2, 2, 1}, symmetric)
}

func TestPad(t *testing.T) {
	t.Run("reflect-1D", func(t *testing.T) {
		input := tensors.FromValue([]float32{1, 2, 3})
		output := padOutput(input, [2]int{1, 1})
		require.NoError(t, executor.Pad(PadReflect, input, paddingsOf([2]int{1, 1}), output, 0))
		assert.Equal(t, []float32{2, 1, 2, 3, 2}, output.Value())
	})

	t.Run("symmetric-1D", func(t *testing.T) {
		input := tensors.FromValue([]int64{1, 2, 3})
		output := padOutput(input, [2]int{2, 2})
		require.NoError(t, executor.Pad(PadSymmetric, input, paddingsOf([2]int{2, 2}), output, 0))
		assert.Equal(t, []int64{2, 1, 1, 2, 3, 3, 2}, output.Value())
	})

	t.Run("constant-2D", func(t *testing.T) {
		input := tensors.FromValue([][]int32{{1, 2}, {3, 4}})
		pairs := [][2]int{{1, 0}, {0, 2}}
		output := padOutput(input, pairs...)
		require.NoError(t, executor.Pad(PadConstant, input, paddingsOf(pairs...), output, 9))
		assert.Equal(t, [][]int32{{9, 9, 9, 9}, {1, 2, 9, 9}, {3, 4, 9, 9}}, output.Value())
	})

	t.Run("reflect-2D", func(t *testing.T) {
		input := tensors.FromValue([][]float64{{1, 2, 3}, {4, 5, 6}})
		pairs := [][2]int{{1, 1}, {2, 2}}
		want := [][]float64{
			{6, 5, 4, 5, 6, 5, 4},
			{3, 2, 1, 2, 3, 2, 1},
			{6, 5, 4, 5, 6, 5, 4},
			{3, 2, 1, 2, 3, 2, 1},
		}
		for _, e := range []*Executor{executor, sequential} {
			output := padOutput(input, pairs...)
			require.NoError(t, e.Pad(PadReflect, input, paddingsOf(pairs...), output, 0))
			assert.Equal(t, want, output.Value())

			// Non-contiguous input and output.
			output = columnMajor(padOutput(input, pairs...))
			require.NoError(t, e.Pad(PadReflect, columnMajor(input), paddingsOf(pairs...), output, 0))
			assert.Equal(t, want, output.Value())
		}
	})

	t.Run("zero-padding", func(t *testing.T) {
		input := tensors.FromValue([][]uint16{{1, 2, 3}, {4, 5, 6}})
		for _, mode := range PadModeValues() {
			output := padOutput(input, [2]int{0, 0}, [2]int{0, 0})
			require.NoError(t, executor.Pad(mode, input, paddingsOf([2]int{0, 0}, [2]int{0, 0}), output, 7))
			assert.True(t, input.Equal(output), "mode %s", mode)
		}
	})

	t.Run("bool", func(t *testing.T) {
		input := tensors.FromValue([]bool{true, false})
		output := padOutput(input, [2]int{1, 1})
		require.NoError(t, executor.Pad(PadConstant, input, paddingsOf([2]int{1, 1}), output, 1))
		assert.Equal(t, []bool{true, true, false, true}, output.Value())
	})

	t.Run("scalar", func(t *testing.T) {
		input := tensors.FromValue(float32(3))
		output := tensors.FromShape(input.Shape())
		require.NoError(t, executor.Pad(PadReflect, input, paddingsOf(), output, 0))
		assert.Equal(t, float32(3), output.Value())
		output = tensors.FromShape(input.Shape())
		require.NoError(t, executor.MirrorPad(input, paddingsOf(), output, PadSymmetric))
		assert.Equal(t, float32(3), output.Value())
	})

	t.Run("empty-axis", func(t *testing.T) {
		input := tensors.FromShape(shapes.Make(dtypes.Float32, 0, 3))
		pairs := [][2]int{{0, 0}, {1, 1}}
		require.NoError(t, executor.Pad(PadReflect, input, paddingsOf(pairs...), padOutput(input, pairs...), 0))
	})

	t.Run("float-paddings", func(t *testing.T) {
		input := tensors.FromValue([]int8{1, 2, 3})
		output := padOutput(input, [2]int{0, 1})
		require.NoError(t, executor.Pad(PadConstant, input, tensors.FromValue([][]float64{{0, 1}}), output, -1))
		assert.Equal(t, []int8{1, 2, 3, -1}, output.Value())
	})
}

func TestMirrorPad(t *testing.T) {
	rng := random.NewPhiloxWithSeed(42)
	dims := []int{3, 4, 5}
	data := make([]float32, 3*4*5)
	for i := range data {
		data[i] = float32(rng.IntN(1000))
	}
	input := tensors.FromFlatDataAndDimensions(data, dims...)
	for _, mode := range []PadMode{PadReflect, PadSymmetric} {
		for trial := range 10 {
			pairs := make([][2]int, len(dims))
			for axis, dim := range dims {
				limit := dim
				if mode == PadSymmetric {
					limit = dim + 1
				}
				pairs[axis] = [2]int{rng.IntN(limit), rng.IntN(limit)}
			}
			t.Run(fmt.Sprintf("%s-%d", mode, trial), func(t *testing.T) {
				want := padOutput(input, pairs...)
				require.NoError(t, sequential.Pad(mode, input, paddingsOf(pairs...), want, 0))
				got := padOutput(input, pairs...)
				require.NoError(t, executor.MirrorPad(input, paddingsOf(pairs...), got, mode))
				require.True(t, want.Equal(got), "paddings %v", pairs)
				got = columnMajor(padOutput(input, pairs...))
				require.NoError(t, executor.Pad(mode, columnMajor(input), paddingsOf(pairs...), got, 0))
				require.True(t, want.Equal(got), "paddings %v", pairs)
			})
		}
	}
}

func TestPadErrors(t *testing.T) {
	input := tensors.FromValue([]float32{1, 2, 3})
	output := filled(float32(-1), 5)
	pads := paddingsOf([2]int{1, 1})
	requireKind(t, ErrShapeMismatch, executor.Pad(PadConstant, input, tensors.FromValue([]int32{1, 1}), output, 0))
	requireKind(t, ErrShapeMismatch, executor.Pad(PadConstant, input, paddingsOf([2]int{1, 1}, [2]int{0, 0}), output, 0))
	requireKind(t, ErrShapeMismatch, executor.Pad(PadConstant, input, paddingsOf([2]int{-1, 3}), output, 0))
	requireKind(t, ErrShapeMismatch, executor.Pad(PadConstant, input, paddingsOf([2]int{2, 1}), output, 0))
	requireKind(t, ErrShapeMismatch, executor.Pad(PadConstant, input, pads, filled(float64(0), 5), 0))
	requireKind(t, ErrShapeMismatch, executor.Pad(PadReflect, input, paddingsOf([2]int{3, 0}), filled(float32(0), 6), 0))
	requireKind(t, ErrShapeMismatch, executor.MirrorPad(input, paddingsOf([2]int{0, 4}), filled(float32(0), 7), PadSymmetric))
	requireKind(t, ErrInvalidIndex, executor.Pad(PadConstant, input, tensors.FromValue([][]float32{{0.5, 1}}), output, 0))
	requireKind(t, ErrInvalidArgument, executor.Pad(PadMode(7), input, pads, output, 0))
	requireKind(t, ErrInvalidArgument, executor.MirrorPad(input, pads, output, PadConstant))
	requireKind(t, ErrInvalidArgument, executor.Pad(PadConstant, nil, pads, output, 0))
	requireKind(t, ErrInvalidArgument, executor.Pad(PadConstant, input, nil, output, 0))
	assert.Equal(t, []float32{-1, -1, -1, -1, -1}, output.Value(), "output changed by failed operation")

	// Output overlapping the input.
	same := tensors.FromValue([]float32{1, 2})
	requireKind(t, ErrInvalidArgument, executor.Pad(PadConstant, same, paddingsOf([2]int{0, 0}), same, 0))
}

func TestPadModeNames(t *testing.T) {
	assert.Equal(t, "Reflect", PadReflect.String())
	mode, err := PadModeString("symmetric")
	require.NoError(t, err)
	assert.Equal(t, PadSymmetric, mode)
	_, err = PadModeString("wrap")
	require.Error(t, err)
	assert.False(t, PadMode(3).IsAPadMode())
	assert.Equal(t, []string{"Constant", "Reflect", "Symmetric"}, PadModeStrings())
}
