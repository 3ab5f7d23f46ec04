// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"slices"
	"testing"

	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/ml/random"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedStream returns pre-defined draws, and records the arguments it was called with.
type scriptedStream struct {
	draws []int
	calls []int
}

func (s *scriptedStream) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

// rowsOf returns the first element of each row of a rank-2 int32 tensor.
func rowsOf(t *tensors.Tensor) []int32 {
	var firsts []int32
	for _, row := range t.Value().([][]int32) {
		firsts = append(firsts, row[0])
	}
	return firsts
}

func TestRandomShuffle(t *testing.T) {
	// Row i is filled with 10*i, 10*i+1, ...
	newRows := func(n, width int) *tensors.Tensor {
		return tensors.FromFlatDataAndDimensions(xslices.Iota[int32](0, n*width), n, width)
	}

	t.Run("scripted", func(t *testing.T) {
		for _, isInplace := range []bool{true, false} {
			input := newRows(4, 10)
			output := input
			if !isInplace {
				output = tensors.FromShape(input.Shape())
			}
			s := &scriptedStream{draws: []int{0, 2, 0}}
			require.NoError(t, executor.RandomShuffle(input, output, s, isInplace))
			assert.Equal(t, []int{4, 3, 2}, s.calls)
			assert.Equal(t, []int32{10, 30, 20, 0}, rowsOf(output), "isInplace=%v", isInplace)
		}
	})

	t.Run("inplace-matches-copy", func(t *testing.T) {
		for _, n := range []int{1, 2, 7, 100} {
			input := newRows(n, 3)
			copied := tensors.FromShape(input.Shape())
			require.NoError(t, executor.RandomShuffle(input, copied, random.NewPhiloxWithSeed(17), false))

			inplace := columnMajor(input)
			require.NoError(t, executor.RandomShuffle(inplace, inplace, random.NewPhiloxWithSeed(17), true))
			require.True(t, copied.Equal(inplace), "n=%d", n)

			// The result is a permutation of the rows, each kept whole.
			firsts := rowsOf(copied)
			for _, row := range copied.Value().([][]int32) {
				assert.Equal(t, []int32{row[0], row[0] + 1, row[0] + 2}, row)
			}
			slices.Sort(firsts)
			for i, first := range firsts {
				require.Equal(t, int32(3*i), first)
			}
		}
	})

	t.Run("rank-1", func(t *testing.T) {
		input := tensors.FromValue([]float64{0, 1, 2, 3})
		output := tensors.FromShape(input.Shape())
		require.NoError(t, executor.RandomShuffle(input, output, &scriptedStream{draws: []int{0, 2, 0}}, false))
		assert.Equal(t, []float64{1, 3, 2, 0}, output.Value())
	})

	t.Run("scalar", func(t *testing.T) {
		input := tensors.FromValue(int8(5))
		output := tensors.FromShape(input.Shape())
		s := &scriptedStream{}
		require.NoError(t, executor.RandomShuffle(input, output, s, false))
		assert.Equal(t, int8(5), output.Value())
		assert.Empty(t, s.calls)
	})

	t.Run("errors", func(t *testing.T) {
		input := newRows(3, 2)
		rng := random.NewPhiloxWithSeed(1)
		requireKind(t, ErrInvalidArgument, executor.RandomShuffle(input, input, nil, true))
		requireKind(t, ErrInvalidArgument, executor.RandomShuffle(nil, input, rng, true))
		requireKind(t, ErrInvalidArgument, executor.RandomShuffle(input, input.Clone(), rng, true))
		requireKind(t, ErrInvalidArgument, executor.RandomShuffle(input, input, rng, false))
		requireKind(t, ErrShapeMismatch, executor.RandomShuffle(input, newRows(2, 3), rng, false))
		assert.Equal(t, [][]int32{{0, 1}, {2, 3}, {4, 5}}, input.Value())
	})
}
