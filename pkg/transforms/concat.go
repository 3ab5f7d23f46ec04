// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"slices"

	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/pkg/errors"
)

// Concat joins the inputs along axis into output. See Executor.Concat.
func Concat(inputs []*tensors.Tensor, output *tensors.Tensor, axis int) error {
	return Default().Concat(inputs, output, axis)
}

// Concat joins the inputs along axis into output. Negative axis counts from the end.
//
// The inputs must have the same dtype and rank, and the same dimensions on every axis but axis.
// output has the inputs' dimensions, with the sum of their dimensions on axis.
func (e *Executor) Concat(inputs []*tensors.Tensor, output *tensors.Tensor, axis int) error {
	const opName = "Concat"
	if len(inputs) == 0 {
		return errorf(ErrDegenerateInput, "%s: empty list of inputs", opName)
	}
	if output == nil {
		return errorf(ErrInvalidArgument, "%s: output tensor is nil", opName)
	}
	for i, input := range inputs {
		if input == nil {
			return errorf(ErrInvalidArgument, "%s: input #%d is nil", opName, i)
		}
	}
	first := inputs[0].Shape()
	if err := checkMinRank(opName, "input #0", inputs[0], 1); err != nil {
		return err
	}
	axis, err := adjustAxis(opName, axis, first.Rank())
	if err != nil {
		return err
	}
	outputDims := slices.Clone(first.Dimensions)
	for i, input := range inputs[1:] {
		s := input.Shape()
		if s.DType != first.DType || s.Rank() != first.Rank() {
			return errorf(ErrShapeMismatch, "%s: input #%d has shape %s, incompatible with input #0 shape %s",
				opName, i+1, s, first)
		}
		for a, dim := range s.Dimensions {
			if a != axis && dim != first.Dimensions[a] {
				return errorf(ErrShapeMismatch, "%s: input #%d has shape %s, different from input #0 shape %s on axis %d",
					opName, i+1, s, first, a)
			}
		}
		outputDims[axis] += s.Dimensions[axis]
	}
	if err := checkShape(opName, "output", output, shapes.Make(first.DType, outputDims...)); err != nil {
		return err
	}
	if err := checkNoOverlap(opName, output, inputs...); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}

	return catch(opName, func() error {
		views := make([]*tensors.Tensor, len(inputs))
		start := 0
		for i, input := range inputs {
			dim := input.Shape().Dim(axis)
			view, err := output.Narrow(axis, start, dim)
			if err != nil {
				return err
			}
			views[i] = view
			start += dim
		}
		errs := make([]error, len(inputs))
		e.parallelFor(opName, len(inputs), output.Size()/len(inputs), func(start, end int) {
			for i := start; i < end; i++ {
				errs[i] = tensors.Copy(views[i], inputs[i])
			}
		})
		for i, err := range errs {
			if err != nil {
				return errors.WithMessagef(err, "copying input #%d", i)
			}
		}
		return nil
	})
}
