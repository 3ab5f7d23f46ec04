// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
)

// tileBPDTypeMap: func(e *Executor, gradOutput, gradInput *tensors.Tensor, reps []int)
var tileBPDTypeMap = NewDTypeMap("TileBP")

// TileBP is the gradient of tiling a tensor reps times along each axis. See Executor.TileBP.
func TileBP(gradOutput, gradInput *tensors.Tensor, reps []int) error {
	return Default().TileBP(gradOutput, gradInput, reps)
}

// TileBP is the gradient of tiling a tensor reps[i] times along each axis i: each element of gradInput
// is the sum of the elements of gradOutput that are copies of it, gradInput[c] = Σ gradOutput[t] for all
// t with t mod dim == c on every axis.
//
// reps has one non-negative value per axis, and gradOutput.Dim(i) == gradInput.Dim(i)*reps[i].
func (e *Executor) TileBP(gradOutput, gradInput *tensors.Tensor, reps []int) error {
	const opName = "TileBP"
	if err := checkNotNil(opName, []string{"gradOutput", "gradInput"}, gradOutput, gradInput); err != nil {
		return err
	}
	rank := gradInput.Rank()
	if len(reps) != rank {
		return errorf(ErrShapeMismatch, "%s: %d reps given for gradInput of rank %d", opName, len(reps), rank)
	}
	outputDims := make([]int, rank)
	for axis, rep := range reps {
		if rep < 0 {
			return errorf(ErrShapeMismatch, "%s: negative reps %v", opName, reps)
		}
		outputDims[axis] = gradInput.Shape().Dim(axis) * rep
	}
	if err := checkShape(opName, "gradOutput", gradOutput, shapes.Make(gradInput.DType(), outputDims...)); err != nil {
		return err
	}
	if err := checkNoOverlap(opName, gradInput, gradOutput); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "gradInput", gradInput); err != nil {
		return err
	}
	fn, err := tileBPDTypeMap.Get(gradInput.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, gradOutput, gradInput *tensors.Tensor, reps []int))(e, gradOutput, gradInput, reps)
		return nil
	})
}

func tileBPGeneric[T dtypes.Number](e *Executor, gradOutput, gradInput *tensors.Tensor, reps []int) {
	gFlat, outFlat := tensors.Flat[T](gradOutput), tensors.Flat[T](gradInput)

	// Displacements in gradOutput's buffer of each of the copies of an element.
	repsShape := shapes.Make(gradInput.DType(), reps...)
	copyStrides := make([]int, len(reps))
	for axis := range reps {
		copyStrides[axis] = gradInput.Shape().Dim(axis) * gradOutput.Strides()[axis]
	}
	copies := make([]int, 0, repsShape.Size())
	for _, offsets := range repsShape.IterOffsets(0, repsShape.Size(), shapes.Layout{Strides: copyStrides}) {
		copies = append(copies, offsets[0])
	}

	// gradOutput strides applied to the coordinates of gradInput address the first copy.
	firstCopy := shapes.Layout{Offset: gradOutput.Layout().Offset, Strides: gradOutput.Strides()}
	shape := gradInput.Shape()
	e.parallelFor("TileBP", shape.Size(), len(copies), func(start, end int) {
		for _, offsets := range shape.IterOffsets(start, end, firstCopy, gradInput.Layout()) {
			var sum T
			for _, c := range copies {
				sum += gFlat[offsets[0]+c]
			}
			outFlat[offsets[1]] = sum
		}
	})
}

func tileBPHalf(e *Executor, gradOutput, gradInput *tensors.Tensor, reps []int) {
	gradInput32 := float32Like(gradInput)
	tileBPGeneric[float32](e, upcastHalf(gradOutput), gradInput32, reps)
	storeHalf(gradInput32, gradInput)
}
