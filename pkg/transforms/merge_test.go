// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"math"
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mergeFn func(inputs []*tensors.Tensor, output *tensors.Tensor) error

func TestMerge(t *testing.T) {
	inputs := []*tensors.Tensor{
		tensors.FromValue([]int32{1, 5, -1}),
		columnMajor(tensors.FromValue([]int32{3, 2, -2})),
		tensors.FromValue([]int32{3, 4, -6}),
	}
	for _, tc := range []struct {
		name string
		fn   mergeFn
		want []int32
	}{
		{"MergeAdd", executor.MergeAdd, []int32{7, 11, -9}},
		{"MergeAvg", executor.MergeAvg, []int32{2, 3, -3}},
		{"MergeMax", executor.MergeMax, []int32{3, 5, -1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			output := tensors.FromShape(inputs[0].Shape())
			require.NoError(t, tc.fn(inputs, output))
			assert.Equal(t, tc.want, output.Value())
		})
	}

	t.Run("MergeMaxIndex", func(t *testing.T) {
		// Ties resolve to the first input.
		output := tensors.FromShape(shapes.Make(dtypes.Int64, 3))
		require.NoError(t, executor.MergeMaxIndex(inputs, output))
		assert.Equal(t, []int64{1, 0, 0}, output.Value())

		floatOutput := tensors.FromShape(shapes.Make(dtypes.Float32, 3))
		require.NoError(t, MergeMaxIndex(inputs, floatOutput))
		assert.Equal(t, []float32{1, 0, 0}, floatOutput.Value())
	})

	t.Run("MergeAvg-truncates", func(t *testing.T) {
		output := tensors.FromShape(shapes.Make(dtypes.Int8, 2))
		require.NoError(t, MergeAvg([]*tensors.Tensor{
			tensors.FromValue([]int8{100, -1}),
			tensors.FromValue([]int8{101, -2}),
		}, output))
		// The sum 201 doesn't fit an int8, but the mean does.
		assert.Equal(t, []int8{100, -1}, output.Value())

		unsigned := tensors.FromShape(shapes.Make(dtypes.Uint8, 1))
		require.NoError(t, MergeAvg([]*tensors.Tensor{tensors.FromValue([]uint8{255}), tensors.FromValue([]uint8{254})}, unsigned))
		assert.Equal(t, []uint8{254}, unsigned.Value())

		floats := tensors.FromShape(shapes.Make(dtypes.Float32, 1))
		require.NoError(t, MergeAvg([]*tensors.Tensor{tensors.FromValue([]float32{1}), tensors.FromValue([]float32{2})}, floats))
		assert.Equal(t, []float32{1.5}, floats.Value())
	})

	t.Run("NaN", func(t *testing.T) {
		nan := math.NaN()
		inputs := []*tensors.Tensor{
			tensors.FromValue([]float64{nan, 1, nan}),
			tensors.FromValue([]float64{2, nan, nan}),
		}
		output := tensors.FromShape(inputs[0].Shape())
		require.NoError(t, executor.MergeMax(inputs, output))
		got := output.Value().([]float64)
		assert.Equal(t, []float64{2, 1}, got[:2])
		assert.True(t, math.IsNaN(got[2]))

		indices := tensors.FromShape(shapes.Make(dtypes.Int32, 3))
		require.NoError(t, executor.MergeMaxIndex(inputs, indices))
		assert.Equal(t, []int32{1, 0, 0}, indices.Value())
	})

	t.Run("single-input-unchanged", func(t *testing.T) {
		values := []float32{float32(math.NaN()), float32(math.Copysign(0, -1)), float32(math.Inf(1)), 1e-40, -3.5}
		input := tensors.FromValue(values)
		for name, fn := range map[string]mergeFn{"MergeAdd": executor.MergeAdd, "MergeAvg": executor.MergeAvg, "MergeMax": executor.MergeMax} {
			output := tensors.FromShape(input.Shape())
			require.NoError(t, fn([]*tensors.Tensor{input}, output))
			for i, v := range output.Value().([]float32) {
				assert.Equal(t, math.Float32bits(values[i]), math.Float32bits(v), "%s: element #%d", name, i)
			}
		}
	})

	t.Run("bfloat16", func(t *testing.T) {
		bf16 := bfloat16.FromFloat32
		inputs := []*tensors.Tensor{
			tensors.FromValue([]bfloat16.BFloat16{bf16(1), bf16(-2)}),
			tensors.FromValue([]bfloat16.BFloat16{bf16(3), bf16(-4)}),
		}
		output := tensors.FromShape(inputs[0].Shape())
		require.NoError(t, executor.MergeAdd(inputs, output))
		assert.Equal(t, []bfloat16.BFloat16{bf16(4), bf16(-6)}, output.Value())
		require.NoError(t, executor.MergeAvg(inputs, output))
		assert.Equal(t, []bfloat16.BFloat16{bf16(2), bf16(-3)}, output.Value())
		require.NoError(t, executor.MergeMax(inputs, output))
		assert.Equal(t, []bfloat16.BFloat16{bf16(3), bf16(-2)}, output.Value())
		indices := tensors.FromShape(shapes.Make(dtypes.Uint8, 2))
		require.NoError(t, executor.MergeMaxIndex(inputs, indices))
		assert.Equal(t, []uint8{1, 0}, indices.Value())
	})

	t.Run("parallel", func(t *testing.T) {
		const size = 1000
		a := tensors.FromFlatDataAndDimensions(xslices.Iota[float64](0, size), 10, 100)
		b := columnMajor(tensors.FromFlatDataAndDimensions(xslices.Iota[float64](size, size), 10, 100))
		want, got := tensors.FromShape(a.Shape()), tensors.FromShape(a.Shape())
		require.NoError(t, sequential.MergeAdd([]*tensors.Tensor{a, b}, want))
		require.NoError(t, executor.MergeAdd([]*tensors.Tensor{a, b}, got))
		assert.True(t, want.Equal(got))
		assert.Equal(t, float64(size+2*(size-1)), tensors.Flat[float64](got)[size-1])
	})

	t.Run("output-aliases-input", func(t *testing.T) {
		a := tensors.FromValue([]float32{1, 2})
		require.NoError(t, executor.MergeAdd([]*tensors.Tensor{a, tensors.FromValue([]float32{10, 20})}, a))
		assert.Equal(t, []float32{11, 22}, a.Value())
	})

	t.Run("errors", func(t *testing.T) {
		output := filled(int32(-7), 3)
		requireKind(t, ErrDegenerateInput, executor.MergeAdd(nil, output))
		requireKind(t, ErrDegenerateInput, executor.MergeMaxIndex([]*tensors.Tensor{}, output))
		requireKind(t, ErrShapeMismatch, executor.MergeAdd([]*tensors.Tensor{inputs[0], filled(int32(1), 2)}, output))
		requireKind(t, ErrShapeMismatch, executor.MergeMax([]*tensors.Tensor{inputs[0], filled(int64(1), 3)}, output))
		requireKind(t, ErrShapeMismatch, executor.MergeAvg(inputs, filled(int32(0), 4)))
		requireKind(t, ErrShapeMismatch, executor.MergeAvg(inputs, filled(float32(0), 3)))
		requireKind(t, ErrShapeMismatch, executor.MergeMaxIndex(inputs, filled(int32(0), 1, 3)))
		requireKind(t, ErrUnsupportedDType, executor.MergeMaxIndex(inputs, filled(false, 3)))
		requireKind(t, ErrUnsupportedDType, executor.MergeAdd([]*tensors.Tensor{filled(true, 3)}, filled(true, 3)))
		requireKind(t, ErrInvalidArgument, executor.MergeAdd([]*tensors.Tensor{inputs[0], nil}, output))
		assert.Equal(t, []int32{-7, -7, -7}, output.Value(), "output changed by failed operation")
	})
}
