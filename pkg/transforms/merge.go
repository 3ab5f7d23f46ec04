// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
)

var (
	// mergeAddDTypeMap: func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor)
	mergeAddDTypeMap = NewDTypeMap("MergeAdd")

	// mergeAvgDTypeMap: func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor)
	mergeAvgDTypeMap = NewDTypeMap("MergeAvg")

	// mergeMaxDTypeMap: func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor)
	mergeMaxDTypeMap = NewDTypeMap("MergeMax")

	// mergeMaxIndexDTypeMap: func(e *Executor, inputs []*tensors.Tensor) []int
	mergeMaxIndexDTypeMap = NewDTypeMap("MergeMaxIndex")
)

// MergeAdd writes the element-wise sum of the inputs to output. See Executor.MergeAdd.
func MergeAdd(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return Default().MergeAdd(inputs, output)
}

// MergeAdd writes the element-wise sum of the inputs to output.
//
// All inputs and the output must have the same shape (and dtype). Integer sums wrap around on overflow.
// output can be one of the inputs.
func (e *Executor) MergeAdd(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return e.merge("MergeAdd", mergeAddDTypeMap, inputs, output)
}

// MergeAvg writes the element-wise mean of the inputs to output. See Executor.MergeAvg.
func MergeAvg(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return Default().MergeAvg(inputs, output)
}

// MergeAvg writes the element-wise mean of the inputs to output.
//
// All inputs and the output must have the same shape (and dtype). Integers are summed in 64 bits and then
// divided with truncation. output can be one of the inputs.
func (e *Executor) MergeAvg(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return e.merge("MergeAvg", mergeAvgDTypeMap, inputs, output)
}

// MergeMax writes the element-wise maximum of the inputs to output. See Executor.MergeMax.
func MergeMax(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return Default().MergeMax(inputs, output)
}

// MergeMax writes the element-wise maximum of the inputs to output. NaN is only the result if all
// values are NaN.
//
// All inputs and the output must have the same shape (and dtype). output can be one of the inputs.
func (e *Executor) MergeMax(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return e.merge("MergeMax", mergeMaxDTypeMap, inputs, output)
}

// MergeMaxIndex writes, for each element, the index of the input holding the maximum value. See Executor.MergeMaxIndex.
func MergeMaxIndex(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	return Default().MergeMaxIndex(inputs, output)
}

// MergeMaxIndex writes, for each element, the index (in the list of inputs) of the input holding the
// maximum value. Ties resolve to the first input holding the maximum, and NaN never wins over a number.
//
// All inputs must have the same shape. output has the same dimensions and any numeric dtype.
func (e *Executor) MergeMaxIndex(inputs []*tensors.Tensor, output *tensors.Tensor) error {
	const opName = "MergeMaxIndex"
	if err := checkMergeInputs(opName, inputs, output); err != nil {
		return err
	}
	if !output.Shape().EqualDimensions(inputs[0].Shape()) {
		return errorf(ErrShapeMismatch, "%s: output shape %s doesn't match inputs shape %s",
			opName, output.Shape(), inputs[0].Shape())
	}
	if !storeIntsDTypeMap.Supports(output.DType()) {
		return errorf(ErrUnsupportedDType, "%s: output dtype %s", opName, output.DType())
	}
	fn, err := mergeMaxIndexDTypeMap.Get(inputs[0].DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		storeInts(fn.(func(e *Executor, inputs []*tensors.Tensor) []int)(e, inputs), output)
		return nil
	})
}

// checkMergeInputs validates the list of inputs and the aliasing of output.
func checkMergeInputs(opName string, inputs []*tensors.Tensor, output *tensors.Tensor) error {
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
		if !input.Shape().Equal(inputs[0].Shape()) {
			return errorf(ErrShapeMismatch, "%s: input #%d has shape %s, but input #0 has shape %s",
				opName, i, input.Shape(), inputs[0].Shape())
		}
	}
	if err := checkElementwiseAliasing(opName, output, inputs...); err != nil {
		return err
	}
	return checkDistinctPositions(opName, "output", output)
}

func (e *Executor) merge(opName string, dtypeMap *DTypeMap, inputs []*tensors.Tensor, output *tensors.Tensor) error {
	if err := checkMergeInputs(opName, inputs, output); err != nil {
		return err
	}
	if err := checkShape(opName, "output", output, inputs[0].Shape()); err != nil {
		return err
	}
	fn, err := dtypeMap.Get(output.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor))(e, inputs, output)
		return nil
	})
}

// forEachMergePosition calls fn for each element, with its logical index, its position in output's buffer
// and the values of the inputs there. Elements are split among workers, and fn must only write to the
// element it is given.
func forEachMergePosition[T dtypes.Supported](e *Executor, opName string, inputs []*tensors.Tensor, output *tensors.Tensor,
	fn func(idx, outputPos int, values []T)) {
	numInputs := len(inputs)
	flats := make([][]T, numInputs)
	layouts := make([]shapes.Layout, numInputs+1)
	for k, input := range inputs {
		flats[k] = tensors.Flat[T](input)
		layouts[k] = input.Layout()
	}
	layouts[numInputs] = output.Layout()
	shape := inputs[0].Shape()
	e.parallelFor(opName, shape.Size(), numInputs, func(start, end int) {
		values := make([]T, numInputs)
		for idx, offsets := range shape.IterOffsets(start, end, layouts...) {
			for k := range numInputs {
				values[k] = flats[k][offsets[k]]
			}
			fn(idx, offsets[numInputs], values)
		}
	})
}

func isNaN[T dtypes.Supported](v T) bool {
	return v != v
}

func mergeAddGeneric[T dtypes.Number](e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
	outFlat := tensors.Flat[T](output)
	forEachMergePosition(e, "MergeAdd", inputs, output, func(_, outputPos int, values []T) {
		sum := values[0]
		for _, v := range values[1:] {
			sum += v
		}
		outFlat[outputPos] = sum
	})
}

func mergeAvgFloatGeneric[T dtypes.GoFloat](e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
	outFlat := tensors.Flat[T](output)
	n := T(len(inputs))
	forEachMergePosition(e, "MergeAvg", inputs, output, func(_, outputPos int, values []T) {
		sum := values[0]
		for _, v := range values[1:] {
			sum += v
		}
		outFlat[outputPos] = sum / n
	})
}

func mergeAvgSignedGeneric[T dtypes.Signed](e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
	outFlat := tensors.Flat[T](output)
	n := int64(len(inputs))
	forEachMergePosition(e, "MergeAvg", inputs, output, func(_, outputPos int, values []T) {
		var sum int64
		for _, v := range values {
			sum += int64(v)
		}
		outFlat[outputPos] = T(sum / n)
	})
}

func mergeAvgUnsignedGeneric[T dtypes.Unsigned](e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
	outFlat := tensors.Flat[T](output)
	n := uint64(len(inputs))
	forEachMergePosition(e, "MergeAvg", inputs, output, func(_, outputPos int, values []T) {
		var sum uint64
		for _, v := range values {
			sum += uint64(v)
		}
		outFlat[outputPos] = T(sum / n)
	})
}

func mergeMaxGeneric[T dtypes.Number](e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
	outFlat := tensors.Flat[T](output)
	forEachMergePosition(e, "MergeMax", inputs, output, func(_, outputPos int, values []T) {
		outFlat[outputPos] = values[argMax(values)]
	})
}

func mergeMaxIndexGeneric[T dtypes.Number](e *Executor, inputs []*tensors.Tensor) []int {
	result := make([]int, inputs[0].Size())
	// The output position is not used: results are kept in logical order and stored by the caller.
	forEachMergePosition(e, "MergeMaxIndex", inputs, inputs[0], func(idx, _ int, values []T) {
		result[idx] = argMax(values)
	})
	return result
}

// argMax returns the index of the first maximum value. NaN only wins if all values are NaN.
func argMax[T dtypes.Number](values []T) int {
	best := 0
	for k := 1; k < len(values); k++ {
		if values[k] > values[best] || (isNaN(values[best]) && !isNaN(values[k])) {
			best = k
		}
	}
	return best
}

// mergeHalf runs the float32 version of a merge operation on Float16 or BFloat16 tensors.
func mergeHalf(fn32 func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor)) func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
	return func(e *Executor, inputs []*tensors.Tensor, output *tensors.Tensor) {
		output32 := float32Like(output)
		fn32(e, upcastHalfs(inputs), output32)
		storeHalf(output32, output)
	}
}

func mergeMaxIndexHalf(e *Executor, inputs []*tensors.Tensor) []int {
	return mergeMaxIndexGeneric[float32](e, upcastHalfs(inputs))
}
