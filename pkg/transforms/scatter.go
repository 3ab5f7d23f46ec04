// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"sync/atomic"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/pkg/errors"
)

// ScatterOp is how ScatterUpdate combines a sub-tensor of the operand (x) with an update (u).
type ScatterOp int

const (
	// ScatterAdd: x = x + u.
	ScatterAdd ScatterOp = iota

	// ScatterSub: x = x - u.
	ScatterSub

	// ScatterMul: x = x * u.
	ScatterMul

	// ScatterDiv: x = x / u.
	ScatterDiv

	// ScatterRSub: x = u - x.
	ScatterRSub

	// ScatterRDiv: x = u / x.
	ScatterRDiv

	// ScatterAssign: x = u.
	ScatterAssign
)

var (
	// scatterDTypeMap: func(e *Executor, op ScatterOp, operand, updates *tensors.Tensor, axes, indices []int) error
	scatterDTypeMap = NewDTypeMap("Scatter")

	// scatterAssignDTypeMap: func(e *Executor, operand, updates *tensors.Tensor, axes, indices []int)
	scatterAssignDTypeMap = NewDTypeMap("ScatterAssign")
)

// ScatterUpdate combines sub-tensors of updates into sub-tensors of operand, in place. See Executor.ScatterUpdate.
func ScatterUpdate(operand, updates *tensors.Tensor, op ScatterOp, axes, indices []int) error {
	return Default().ScatterUpdate(operand, updates, op, axes, indices)
}

// ScatterUpdate combines, in place, the i-th sub-tensor of updates into the sub-tensor indices[i] of operand,
// using op. Sub-tensors span the given axes (see tensors.Tensor.SubTensors), and the axes can be negative.
//
// updates must have operand's rank and dtype, the same dimensions on axes, and exactly len(indices)
// sub-tensors. Indices must be in [0, operand.NumSubTensors(axes)).
//
// Updates are applied in the order of indices: repeated indices accumulate, and with ScatterAssign the
// last one wins. Everything is validated before operand is changed: for integer dtypes a division by zero
// returns an ErrInvalidArgument and leaves operand untouched. updates can't share storage with operand.
func (e *Executor) ScatterUpdate(operand, updates *tensors.Tensor, op ScatterOp, axes, indices []int) error {
	const opName = "ScatterUpdate"
	if err := checkNotNil(opName, []string{"operand", "updates"}, operand, updates); err != nil {
		return err
	}
	if !op.IsAScatterOp() {
		return errorf(ErrInvalidArgument, "%s: invalid op %s", opName, op)
	}
	axes, err := normalizeAxes(opName, operand.Rank(), axes)
	if err != nil {
		return err
	}
	if updates.DType() != operand.DType() || updates.Rank() != operand.Rank() {
		return errorf(ErrShapeMismatch, "%s: updates shape %s incompatible with operand shape %s",
			opName, updates.Shape(), operand.Shape())
	}
	for _, axis := range axes {
		if updates.Shape().Dim(axis) != operand.Shape().Dim(axis) {
			return errorf(ErrShapeMismatch, "%s: sub-tensors of updates %s and operand %s differ on axis %d",
				opName, updates.Shape(), operand.Shape(), axis)
		}
	}
	if numUpdates := updates.NumSubTensors(axes); numUpdates != len(indices) {
		return errorf(ErrShapeMismatch, "%s: updates %s has %d sub-tensors over axes %v, but %d indices were given",
			opName, updates.Shape(), numUpdates, axes, len(indices))
	}
	if err := checkIndexRange(opName, indices, operand.NumSubTensors(axes)); err != nil {
		return err
	}
	if err := checkNoOverlap(opName, operand, updates); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "operand", operand); err != nil {
		return err
	}

	if op == ScatterAssign {
		fn, err := scatterAssignDTypeMap.Get(operand.DType())
		if err != nil {
			return err
		}
		return catch(opName, func() error {
			fn.(func(e *Executor, operand, updates *tensors.Tensor, axes, indices []int))(e, operand, updates, axes, indices)
			return nil
		})
	}

	fn, err := scatterDTypeMap.Get(operand.DType())
	if err != nil {
		return err
	}
	scatterFn := fn.(func(e *Executor, op ScatterOp, operand, updates *tensors.Tensor, axes, indices []int) error)
	return catch(opName, func() error {
		if operand.DType().IsInt() && (op == ScatterDiv || op == ScatterRDiv) {
			// A division by zero is only found while applying the updates, so they are applied to a copy.
			target := operand.Clone()
			if err := scatterFn(e, op, target, updates, axes, indices); err != nil {
				return err
			}
			return tensors.Copy(operand, target)
		}
		return scatterFn(e, op, operand, updates, axes, indices)
	})
}

// ScatterUpdateFromArgs is ScatterUpdate with op, axes and indices encoded in a list of integer arguments.
// See Executor.ScatterUpdateFromArgs.
func ScatterUpdateFromArgs(operand, updates *tensors.Tensor, args []int) error {
	return Default().ScatterUpdateFromArgs(operand, updates, args)
}

// ScatterUpdateFromArgs is ScatterUpdate with op, axes and indices encoded in a list of integer arguments:
//
//	[op, numAxes, axes..., numIndices, indices...]
//
// It returns an ErrInvalidArgument if the list is malformed.
func (e *Executor) ScatterUpdateFromArgs(operand, updates *tensors.Tensor, args []int) error {
	const opName = "ScatterUpdateFromArgs"
	op, axes, indices, err := decodeScatterArgs(args)
	if err != nil {
		return errorf(ErrInvalidArgument, "%s: %v", opName, err)
	}
	return e.ScatterUpdate(operand, updates, op, axes, indices)
}

func decodeScatterArgs(args []int) (op ScatterOp, axes, indices []int, err error) {
	if len(args) < 2 {
		return 0, nil, nil, errors.Errorf("want at least 2 arguments (op, numAxes), got %d", len(args))
	}
	op = ScatterOp(args[0])
	numAxes := args[1]
	if numAxes < 0 || 2+numAxes >= len(args) {
		return 0, nil, nil, errors.Errorf("numAxes=%d doesn't fit in %d arguments", numAxes, len(args))
	}
	axes = args[2 : 2+numAxes]
	numIndices := args[2+numAxes]
	rest := args[3+numAxes:]
	if numIndices != len(rest) {
		return 0, nil, nil, errors.Errorf("numIndices=%d, but %d indices follow", numIndices, len(rest))
	}
	return op, axes, rest, nil
}

// scatterPositions calls fn(operandPos, updatePos) for every element of every update: the updates are parallelized
// over the element positions within the sub-tensors, and for each position they are applied in the order of indices.
func (e *Executor) scatterPositions(operand, updates blocks, indices []int, fn func(operandPos, updatePos int)) {
	blockSize := updates.shape.Size()
	if blockSize == 0 || len(indices) == 0 {
		return
	}
	operandLayout := shapes.Layout{Strides: operand.strides}
	updatesLayout := shapes.Layout{Strides: updates.strides}
	e.parallelFor("ScatterUpdate", blockSize, len(indices), func(start, end int) {
		for _, offsets := range updates.shape.IterOffsets(start, end, operandLayout, updatesLayout) {
			for k, index := range indices {
				fn(operand.offsets[index]+offsets[0], updates.offsets[k]+offsets[1])
			}
		}
	})
}

func scatterAssignGeneric[T dtypes.Supported](e *Executor, operand, updates *tensors.Tensor, axes, indices []int) {
	operandFlat, updatesFlat := tensors.Flat[T](operand), tensors.Flat[T](updates)
	e.scatterPositions(subTensorBlocks(operand, axes), subTensorBlocks(updates, axes), indices,
		func(operandPos, updatePos int) {
			operandFlat[operandPos] = updatesFlat[updatePos]
		})
}

func scatterGeneric[T dtypes.Number](e *Executor, op ScatterOp, operand, updates *tensors.Tensor, axes, indices []int) error {
	operandFlat, updatesFlat := tensors.Flat[T](operand), tensors.Flat[T](updates)
	isInt := !dtypes.FromGenericsType[T]().IsFloat()
	var divisionByZero atomic.Bool
	e.scatterPositions(subTensorBlocks(operand, axes), subTensorBlocks(updates, axes), indices,
		func(operandPos, updatePos int) {
			x, u := operandFlat[operandPos], updatesFlat[updatePos]
			switch op {
			case ScatterAdd:
				x += u
			case ScatterSub:
				x -= u
			case ScatterMul:
				x *= u
			case ScatterDiv:
				if isInt && u == 0 {
					divisionByZero.Store(true)
					return
				}
				x /= u
			case ScatterRSub:
				x = u - x
			case ScatterRDiv:
				if isInt && x == 0 {
					divisionByZero.Store(true)
					return
				}
				x = u / x
			case ScatterAssign:
				x = u
			}
			operandFlat[operandPos] = x
		})
	if divisionByZero.Load() {
		return errorf(ErrInvalidArgument, "integer division by zero in %s", op)
	}
	return nil
}

func scatterHalf(e *Executor, op ScatterOp, operand, updates *tensors.Tensor, axes, indices []int) error {
	operand32 := upcastHalf(operand)
	if err := scatterGeneric[float32](e, op, operand32, upcastHalf(updates), axes, indices); err != nil {
		return err
	}
	storeHalf(operand32, operand)
	return nil
}
