// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"slices"

	"github.com/gomlx/ndtransforms/pkg/support/sets"
	"github.com/pkg/errors"
)

// AdjustAxisToRank returns a non-negative axis, adjusting negative numbers to the given rank.
// It returns an error if the axis is out of range [-rank, rank).
func AdjustAxisToRank(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return -1, errors.Errorf("axis %d is out of range for the rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// NormalizeAxes adjusts each of the axes to the rank (see AdjustAxisToRank), and returns them sorted.
//
// It returns an error if any axis is out of range or if an axis is repeated (after adjustment,
// so -1 and rank-1 are the same axis).
func NormalizeAxes(rank int, axes ...int) ([]int, error) {
	normalized := make([]int, 0, len(axes))
	seen := sets.Make[int](len(axes))
	for _, axis := range axes {
		adjusted, err := AdjustAxisToRank(axis, rank)
		if err != nil {
			return nil, err
		}
		if !seen.InsertNew(adjusted) {
			return nil, errors.Errorf("axis %d (given as %d) is repeated in %v", adjusted, axis, axes)
		}
		normalized = append(normalized, adjusted)
	}
	slices.Sort(normalized)
	return normalized, nil
}

// ComplementAxes returns the axes in [0, rank) not listed in axes, in increasing order.
// It assumes axes are already normalized.
func ComplementAxes(rank int, axes []int) []int {
	excluded := sets.MakeWith(axes...)
	complement := make([]int, 0, rank)
	for axis := range rank {
		if !excluded.Has(axis) {
			complement = append(complement, axis)
		}
	}
	return complement
}

// SelectDimensions returns the dimensions of the given axes, in the order given.
func (s Shape) SelectDimensions(axes []int) []int {
	dims := make([]int, len(axes))
	for i, axis := range axes {
		dims[i] = s.Dimensions[axis]
	}
	return dims
}
