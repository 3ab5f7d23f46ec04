// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
)

// checkNotNil returns an ErrInvalidArgument if any of the named tensors is nil.
func checkNotNil(opName string, names []string, ts ...*tensors.Tensor) error {
	for i, t := range ts {
		if t == nil {
			return errorf(ErrInvalidArgument, "%s: %s tensor is nil", opName, names[i])
		}
	}
	return nil
}

// checkShape returns an ErrShapeMismatch if t doesn't have the wanted shape.
func checkShape(opName, name string, t *tensors.Tensor, want shapes.Shape) error {
	if !t.Shape().Equal(want) {
		return errorf(ErrShapeMismatch, "%s: %s has shape %s, expected %s", opName, name, t.Shape(), want)
	}
	return nil
}

// checkMinRank returns an ErrShapeMismatch if t has rank lower than minRank.
func checkMinRank(opName, name string, t *tensors.Tensor, minRank int) error {
	if t.Rank() < minRank {
		return errorf(ErrShapeMismatch, "%s: %s must have rank >= %d, got shape %s", opName, name, minRank, t.Shape())
	}
	return nil
}

// checkDistinctPositions returns an ErrInvalidArgument if t, written by the operation, has a layout
// that maps different coordinates to the same buffer position (e.g. a zero stride).
func checkDistinctPositions(opName, name string, t *tensors.Tensor) error {
	if !t.HasDistinctPositions() {
		return errorf(ErrInvalidArgument, "%s: %s layout (offset=%d, strides=%v) maps different elements to the same position",
			opName, name, t.Layout().Offset, t.Strides())
	}
	return nil
}

// checkNoOverlap returns an ErrInvalidArgument if output shares storage with any of the inputs.
func checkNoOverlap(opName string, output *tensors.Tensor, inputs ...*tensors.Tensor) error {
	for _, input := range inputs {
		if input != nil && output.SharesStorage(input) {
			return errorf(ErrInvalidArgument, "%s: output shares storage with an input", opName)
		}
	}
	return nil
}

// checkElementwiseAliasing allows output to be exactly the same view as an input, for element-wise
// operations, but no other overlap.
func checkElementwiseAliasing(opName string, output *tensors.Tensor, inputs ...*tensors.Tensor) error {
	for _, input := range inputs {
		if output.SharesStorage(input) && !output.SameView(input) {
			return errorf(ErrInvalidArgument, "%s: output partially overlaps an input", opName)
		}
	}
	return nil
}

// normalizeAxes wraps shapes.NormalizeAxes errors as ErrInvalidAxis.
func normalizeAxes(opName string, rank int, axes []int) ([]int, error) {
	normalized, err := shapes.NormalizeAxes(rank, axes...)
	if err != nil {
		return nil, errorf(ErrInvalidAxis, "%s: %v", opName, err)
	}
	return normalized, nil
}

// adjustAxis wraps shapes.AdjustAxisToRank errors as ErrInvalidAxis.
func adjustAxis(opName string, axis, rank int) (int, error) {
	adjusted, err := shapes.AdjustAxisToRank(axis, rank)
	if err != nil {
		return 0, errorf(ErrInvalidAxis, "%s: %v", opName, err)
	}
	return adjusted, nil
}
