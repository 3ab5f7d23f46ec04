// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/ml/random"
)

// RandomShuffle permutes the sub-tensors of input along axis 0. See Executor.RandomShuffle.
func RandomShuffle(input, output *tensors.Tensor, rng random.Interface, isInplace bool) error {
	return Default().RandomShuffle(input, output, rng, isInplace)
}

// RandomShuffle permutes the sub-tensors of input along axis 0 (the rows of a matrix), with a Fisher-Yates
// pass drawing from rng: for i = n-1 down to 1, position i is exchanged with position rng.IntN(i+1).
//
// If isInplace, output must be the same view as input, and the sub-tensors are swapped in place.
// Otherwise output must have input's shape and not share its storage, and the sub-tensors are copied
// to their final positions. Both variants consume the same values from rng and give the same result.
//
// rng is used sequentially: concurrent calls sharing a stream must serialize it, see random.NewLocked.
func (e *Executor) RandomShuffle(input, output *tensors.Tensor, rng random.Interface, isInplace bool) error {
	const opName = "RandomShuffle"
	if err := checkNotNil(opName, []string{"input", "output"}, input, output); err != nil {
		return err
	}
	if rng == nil {
		return errorf(ErrInvalidArgument, "%s: nil random stream", opName)
	}
	if isInplace {
		if !output.SameView(input) {
			return errorf(ErrInvalidArgument, "%s: in-place shuffle requires output to be the same view as input", opName)
		}
	} else {
		if err := checkShape(opName, "output", output, input.Shape()); err != nil {
			return err
		}
		if err := checkNoOverlap(opName, output, input); err != nil {
			return err
		}
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}

	return catch(opName, func() error {
		if input.Rank() == 0 {
			if !isInplace {
				return tensors.Copy(output, input)
			}
			return nil
		}
		axes := trailingAxes(1, input.Rank())
		n := input.Shape().Dim(0)
		if isInplace {
			b := subTensorBlocks(input, axes)
			for i := n - 1; i > 0; i-- {
				swapBlocks(b, i, rng.IntN(i+1))
			}
			return nil
		}
		perm := random.Permutation(rng, n)
		e.copyBlocks(opName, subTensorBlocks(input, axes), subTensorBlocks(output, axes), perm)
		return nil
	})
}
