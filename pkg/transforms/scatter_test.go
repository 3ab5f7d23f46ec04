// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestScatterUpdate(t *testing.T) {
	t.Run("duplicates-accumulate", func(t *testing.T) {
		operand := filled(float32(0), 3, 2)
		updates := tensors.FromValue([][]float32{{1, 1}, {2, 2}, {3, 3}})
		require.NoError(t, executor.ScatterUpdate(operand, updates, ScatterAdd, []int{1}, []int{0, 0, 2}))
		assert.Equal(t, [][]float32{{3, 3}, {0, 0}, {3, 3}}, operand.Value())
	})

	t.Run("last-write-wins", func(t *testing.T) {
		operand := filled(int32(0), 3, 2)
		updates := tensors.FromValue([][]int32{{5, 5}, {7, 7}, {9, 9}})
		require.NoError(t, executor.ScatterUpdate(operand, updates, ScatterAssign, []int{-1}, []int{1, 1, 0}))
		assert.Equal(t, [][]int32{{9, 9}, {7, 7}, {0, 0}}, operand.Value())
	})

	t.Run("ops", func(t *testing.T) {
		for op, want := range map[ScatterOp]float64{
			ScatterAdd:    8,
			ScatterSub:    4,
			ScatterMul:    12,
			ScatterDiv:    3,
			ScatterRSub:   -4,
			ScatterRDiv:   2.0 / 6.0,
			ScatterAssign: 2,
		} {
			operand := tensors.FromValue([]float64{8, 6})
			require.NoError(t, executor.ScatterUpdate(operand, tensors.FromValue([]float64{2}), op, nil, []int{1}))
			assert.Equal(t, []float64{8, want}, operand.Value(), "op=%s", op)
		}
	})

	t.Run("columns", func(t *testing.T) {
		// Sub-tensors spanning axis 0 are the columns. The operand is not contiguous.
		operand := columnMajor(tensors.FromValue([][]float64{{1, 2, 3}, {4, 5, 6}}))
		updates := tensors.FromValue([][]float64{{10, 20}, {30, 40}})
		require.NoError(t, executor.ScatterUpdate(operand, updates, ScatterMul, []int{0}, []int{2, 0}))
		assert.Equal(t, [][]float64{{20, 2, 30}, {160, 5, 180}}, operand.Value())
	})

	t.Run("integer-division", func(t *testing.T) {
		operand := tensors.FromValue([]int32{7, 6})
		require.NoError(t, executor.ScatterUpdate(operand, tensors.FromValue([]int32{2}), ScatterDiv, nil, []int{0}))
		assert.Equal(t, []int32{3, 6}, operand.Value())

		// Division by zero is found after the first update: the operand must be left untouched.
		updates := tensors.FromValue([]int32{2, 0})
		requireKind(t, ErrInvalidArgument, executor.ScatterUpdate(operand, updates, ScatterDiv, nil, []int{1, 0}))
		assert.Equal(t, []int32{3, 6}, operand.Value())

		operand = tensors.FromValue([]int32{1, 6})
		updates = tensors.FromValue([]int32{3, 4})
		requireKind(t, ErrInvalidArgument, executor.ScatterUpdate(operand, updates, ScatterRDiv, nil, []int{1, 1}))
		assert.Equal(t, []int32{1, 6}, operand.Value())
	})

	t.Run("float16", func(t *testing.T) {
		operand := tensors.FromValue([]float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2)})
		updates := tensors.FromValue([]float16.Float16{float16.Fromfloat32(0.5), float16.Fromfloat32(0.25)})
		require.NoError(t, ScatterUpdate(operand, updates, ScatterAdd, nil, []int{1, 1}))
		assert.Equal(t, []float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2.75)}, operand.Value())
	})

	t.Run("from-args", func(t *testing.T) {
		operand := filled(int64(1), 3, 2)
		updates := tensors.FromValue([][]int64{{1, 2}, {3, 4}})
		args := []int{int(ScatterAdd), 1, 1, 2, 0, 2}
		require.NoError(t, executor.ScatterUpdateFromArgs(operand, updates, args))
		assert.Equal(t, [][]int64{{2, 3}, {1, 1}, {4, 5}}, operand.Value())

		for _, malformed := range [][]int{{0}, {0, 1}, {0, 2, 1}, {0, 1, 1, 3, 0, 1}, {0, -1, 0}} {
			requireKind(t, ErrInvalidArgument, ScatterUpdateFromArgs(operand, updates, malformed))
		}
		requireKind(t, ErrInvalidArgument, ScatterUpdateFromArgs(operand, updates, []int{99, 1, 1, 2, 0, 2}))
	})

	t.Run("errors", func(t *testing.T) {
		operand := filled(float32(1), 3, 2)
		updates := filled(float32(5), 2, 2)
		requireKind(t, ErrInvalidIndex, executor.ScatterUpdate(operand, updates, ScatterAssign, []int{1}, []int{0, 3}))
		requireKind(t, ErrInvalidIndex, executor.ScatterUpdate(operand, updates, ScatterAdd, []int{1}, []int{-1, 0}))
		assert.Equal(t, [][]float32{{1, 1}, {1, 1}, {1, 1}}, operand.Value(), "operand changed by failed operation")

		requireKind(t, ErrInvalidArgument, executor.ScatterUpdate(operand, updates, ScatterOp(-1), []int{1}, []int{0, 1}))
		requireKind(t, ErrShapeMismatch, executor.ScatterUpdate(operand, updates, ScatterAdd, []int{1}, []int{0}))
		requireKind(t, ErrShapeMismatch, executor.ScatterUpdate(operand, filled(float32(1), 2, 3), ScatterAdd, []int{1}, []int{0, 1}))
		requireKind(t, ErrShapeMismatch, executor.ScatterUpdate(operand, filled(float64(1), 2, 2), ScatterAdd, []int{1}, []int{0, 1}))
		requireKind(t, ErrInvalidAxis, executor.ScatterUpdate(operand, updates, ScatterAdd, []int{2}, []int{0, 1}))
		requireKind(t, ErrInvalidAxis, executor.ScatterUpdate(operand, updates, ScatterAdd, []int{1, -1}, []int{0, 1}))
		requireKind(t, ErrUnsupportedDType, executor.ScatterUpdate(filled(true, 2), filled(false, 1), ScatterAdd, nil, []int{0}))

		rows := must.M1(operand.Narrow(0, 1, 2))
		requireKind(t, ErrInvalidArgument, executor.ScatterUpdate(operand, rows, ScatterAdd, []int{1}, []int{0, 1}))
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, "RDiv", ScatterRDiv.String())
		op, err := ScatterOpString("assign")
		require.NoError(t, err)
		assert.Equal(t, ScatterAssign, op)
		assert.Len(t, ScatterOpValues(), 7)
	})
}
