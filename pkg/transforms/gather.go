// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"slices"

	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/pkg/errors"
)

// Gather selects slices of input along axis. See Executor.Gather.
func Gather(input, indices, output *tensors.Tensor, axis int, indexArgs ...int) error {
	return Default().Gather(input, indices, output, axis, indexArgs...)
}

// Gather selects slices of input along axis: with input dimensions A ++ [D] ++ B (D at axis),
// output[a, k..., b] = input[a, indices[k...], b].
//
// The indices are given either by the indices tensor (any integer dtype, or a float dtype holding integral
// values, of any shape I, in which case output dimensions are A ++ I ++ B), or, if indices is nil, by
// indexArgs (output dimensions A ++ [len(indexArgs)] ++ B). Negative axis counts from the end.
// Indices must be in [0, D).
func (e *Executor) Gather(input, indices, output *tensors.Tensor, axis int, indexArgs ...int) error {
	const opName = "Gather"
	if err := checkNotNil(opName, []string{"input", "output"}, input, output); err != nil {
		return err
	}
	if err := checkMinRank(opName, "input", input, 1); err != nil {
		return err
	}
	axis, err := adjustAxis(opName, axis, input.Rank())
	if err != nil {
		return err
	}

	var idx, indicesDims []int
	if indices != nil {
		if len(indexArgs) > 0 {
			return errorf(ErrInvalidArgument, "%s: indices given both as a tensor and as %d index arguments",
				opName, len(indexArgs))
		}
		idx, err = readIndices(indices)
		if err != nil {
			return errors.WithMessage(err, opName)
		}
		indicesDims = indices.Shape().Dimensions
	} else {
		if len(indexArgs) == 0 {
			return errorf(ErrDegenerateInput, "%s: no indices given", opName)
		}
		idx = indexArgs
		indicesDims = []int{len(indexArgs)}
	}
	inputDims := input.Shape().Dimensions
	if err := checkIndexRange(opName, idx, inputDims[axis]); err != nil {
		return err
	}

	outputDims := slices.Concat(inputDims[:axis], indicesDims, inputDims[axis+1:])
	if err := checkShape(opName, "output", output, shapes.Make(input.DType(), outputDims...)); err != nil {
		return err
	}
	if err := checkNoOverlap(opName, output, input, indices); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}

	return catch(opName, func() error {
		src := subTensorBlocks(input, trailingAxes(axis+1, input.Rank()))
		dst := subTensorBlocks(output, trailingAxes(axis+len(indicesDims), output.Rank()))
		outerSize := xslices.Product(inputDims[:axis])
		dim, numIndices := inputDims[axis], len(idx)
		srcOf := make([]int, outerSize*numIndices)
		for outer := range outerSize {
			for k, index := range idx {
				srcOf[outer*numIndices+k] = outer*dim + index
			}
		}
		e.copyBlocks(opName, src, dst, srcOf)
		return nil
	})
}

// GatherND selects slices of input addressed by tuples of leading indices. See Executor.GatherND.
func GatherND(input, indices, output *tensors.Tensor) error {
	return Default().GatherND(input, indices, output)
}

// GatherND selects slices of input addressed by tuples of indices into its leading axes.
//
// indices has dimensions P ++ [K], with K <= rank(input): each of its prod(P) tuples addresses the
// sub-tensor input[i_0, ..., i_{K-1}, ...], of dimensions input.Dimensions[K:]. output has dimensions
// P ++ input.Dimensions[K:]. Each index i_j must be in [0, input.Dimensions[j]).
func (e *Executor) GatherND(input, indices, output *tensors.Tensor) error {
	const opName = "GatherND"
	if err := checkNotNil(opName, []string{"input", "indices", "output"}, input, indices, output); err != nil {
		return err
	}
	if err := checkMinRank(opName, "indices", indices, 1); err != nil {
		return err
	}
	tupleSize := indices.Shape().Dim(-1)
	if tupleSize > input.Rank() {
		return errorf(ErrShapeMismatch, "%s: indices tuples have %d elements, but input has rank %d",
			opName, tupleSize, input.Rank())
	}
	idx, err := readIndices(indices)
	if err != nil {
		return errors.WithMessage(err, opName)
	}
	inputDims := input.Shape().Dimensions
	for n := 0; n < len(idx); n += tupleSize {
		for j, index := range idx[n : n+tupleSize] {
			if index < 0 || index >= inputDims[j] {
				return errorf(ErrInvalidIndex, "%s: index tuple #%d %v has index %d out of range [0, %d) for axis %d",
					opName, n/tupleSize, idx[n:n+tupleSize], index, inputDims[j], j)
			}
		}
	}

	batchDims := indices.Shape().Dimensions[:indices.Rank()-1]
	outputDims := slices.Concat(batchDims, inputDims[tupleSize:])
	if err := checkShape(opName, "output", output, shapes.Make(input.DType(), outputDims...)); err != nil {
		return err
	}
	if err := checkNoOverlap(opName, output, input, indices); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}

	return catch(opName, func() error {
		strides := input.Strides()
		src := blocks{
			t:       input,
			shape:   shapes.Make(input.DType(), inputDims[tupleSize:]...),
			strides: strides[tupleSize:],
			offsets: make([]int, xslices.Product(batchDims)),
		}
		for n := range src.offsets {
			offset := input.Layout().Offset
			if tupleSize > 0 {
				offset += shapes.FlatIndex(idx[n*tupleSize:(n+1)*tupleSize], strides[:tupleSize])
			}
			src.offsets[n] = offset
		}
		dst := subTensorBlocks(output, trailingAxes(len(batchDims), output.Rank()))
		e.copyBlocks(opName, src, dst, nil)
		return nil
	})
}
