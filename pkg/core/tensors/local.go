// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"fmt"
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// copyElements copies src into dst, element by element in logical order. Shapes must match.
func copyElements[T dtypes.Supported](src, dst *Tensor) {
	srcFlat, dstFlat := Flat[T](src), Flat[T](dst)
	if src.IsContiguous() && dst.IsContiguous() {
		n := src.Size()
		copy(dstFlat[dst.layout.Offset:dst.layout.Offset+n], srcFlat[src.layout.Offset:src.layout.Offset+n])
		return
	}
	for _, offsets := range src.shape.IterOffsets(0, src.Size(), src.layout, dst.layout) {
		dstFlat[offsets[1]] = srcFlat[offsets[0]]
	}
}

var copyDispatch = [dtypes.NumDTypes]func(src, dst *Tensor){
	dtypes.Bool:     copyElements[bool],
	dtypes.Int8:     copyElements[int8],
	dtypes.Int16:    copyElements[int16],
	dtypes.Int32:    copyElements[int32],
	dtypes.Int64:    copyElements[int64],
	dtypes.Uint8:    copyElements[uint8],
	dtypes.Uint16:   copyElements[uint16],
	dtypes.Uint32:   copyElements[uint32],
	dtypes.Uint64:   copyElements[uint64],
	dtypes.Float16:  copyElements[float16.Float16],
	dtypes.Float32:  copyElements[float32],
	dtypes.Float64:  copyElements[float64],
	dtypes.BFloat16: copyElements[bfloat16.BFloat16],
}

// Copy copies the elements of src into dst. Their shapes must be equal, but their layouts may differ.
//
// If src and dst overlap in memory (other than being the same view), the result is undefined.
func Copy(dst, src *Tensor) error {
	if !src.shape.Equal(dst.shape) {
		return errors.Errorf("tensors.Copy: source shape %s and destination shape %s differ", src.shape, dst.shape)
	}
	if src.SameView(dst) {
		return nil
	}
	copyDispatch[src.DType()](src, dst)
	return nil
}

// CopyFlatData returns a copy of the tensor's elements in logical (row-major) order.
//
// It panics if T doesn't match the tensor's DType.
func CopyFlatData[T dtypes.Supported](t *Tensor) []T {
	flat := Flat[T](t)
	out := make([]T, t.Size())
	for idx, pos := range t.Iter() {
		out[idx] = flat[pos]
	}
	return out
}

// ToScalar returns the single value of a scalar tensor, or of a tensor with one element.
//
// It panics if the tensor has more than one element or T doesn't match the tensor's DType.
func ToScalar[T dtypes.Supported](t *Tensor) T {
	if t.Size() != 1 {
		exceptions.Panicf("tensors.ToScalar called on tensor of shape %s", t.shape)
	}
	return Flat[T](t)[t.layout.Offset]
}

// Value returns a multidimensional slice (or a scalar) with a copy of the tensor's values,
// e.g. [][]float32 for a Float32 tensor of rank 2.
func (t *Tensor) Value() any {
	flatV := reflect.ValueOf(t.flat)
	contiguous := reflect.MakeSlice(flatV.Type(), t.Size(), t.Size())
	for idx, pos := range t.Iter() {
		contiguous.Index(idx).Set(flatV.Index(pos))
	}
	if t.IsScalar() {
		return contiguous.Index(0).Interface()
	}
	return convertDataToSlices(contiguous, t.shape.Dimensions...).Interface()
}

// convertDataToSlices takes data as a flat slice and creates a multidimensional slice with the given dimensions that
// points to the given data.
func convertDataToSlices(dataV reflect.Value, dimensions ...int) reflect.Value {
	if len(dimensions) <= 1 {
		return dataV
	}
	resultT := dataV.Type().Elem()
	for range dimensions {
		resultT = reflect.SliceOf(resultT)
	}
	strides := make([]int, len(dimensions))
	currentStride := 1
	for dim := len(dimensions) - 1; dim >= 0; dim-- {
		strides[dim] = currentStride
		currentStride *= dimensions[dim]
	}
	return createSlicesRecursively(resultT, dataV, dimensions, strides)
}

// createSlicesRecursively creates the nested slices pointing to the flat data, given the row-major strides.
func createSlicesRecursively(resultT reflect.Type, data reflect.Value, dimensions []int, strides []int) reflect.Value {
	if len(strides) == 1 {
		return data
	}
	numElements := dimensions[0]
	slice := reflect.MakeSlice(resultT, numElements, numElements)
	subResultT := resultT.Elem()
	for ii := range numElements {
		start := ii * strides[0]
		end := (ii + 1) * strides[0]
		subSlice := createSlicesRecursively(subResultT, data.Slice(start, end), dimensions[1:], strides[1:])
		slice.Index(ii).Set(subSlice)
	}
	return slice
}

// FromValue returns a tensor with a copy of the given multidimensional slice (or scalar).
// If the rank of the `value` is larger than 1, the shape of all sub-slices must be the same.
// Go's int values are stored as Int64 (or Int32 on 32 bits platforms).
//
// It panics if the shape is not regular.
func FromValue[S MultiDimensionSlice](value S) *Tensor {
	return FromAnyValue(value)
}

// FromAnyValue is a non-generic version of FromValue.
// If value is a tensor already, it is simply returned.
//
// It panics with an error if the value type is unsupported or the shape is not regular.
func FromAnyValue(value any) *Tensor {
	if valueT, ok := value.(*Tensor); ok {
		return valueT
	}
	shape, err := shapeForValue(value)
	if err != nil {
		panic(errors.Wrapf(err, "cannot create shape from %T", value))
	}
	t := FromShape(shape)
	flatV := reflect.ValueOf(t.flat)
	elemType := flatV.Type().Elem()
	pos := 0
	var copyRecursively func(v reflect.Value)
	copyRecursively = func(v reflect.Value) {
		if v.Kind() == reflect.Slice {
			for ii := range v.Len() {
				copyRecursively(v.Index(ii))
			}
			return
		}
		flatV.Index(pos).Set(v.Convert(elemType))
		pos++
	}
	copyRecursively(reflect.ValueOf(value))
	return t
}

func shapeForValue(v any) (shapes.Shape, error) {
	var shape shapes.Shape
	err := shapeForValueRecursive(&shape, reflect.ValueOf(v), reflect.TypeOf(v))
	return shape, err
}

func shapeForValueRecursive(shape *shapes.Shape, v reflect.Value, t reflect.Type) error {
	if t == nil {
		return errors.New("cannot convert nil to a tensor")
	}
	switch t.Kind() {
	case reflect.Slice:
		t = t.Elem()
		shape.Dimensions = append(shape.Dimensions, v.Len())
		shapePrefix := shape.Clone()
		if v.Len() == 0 {
			return errors.Errorf("value with empty slice not valid for Tensor conversion: %T -- use shapes.Make "+
				"and FromShape for tensors with zero-sized axes", v.Interface())
		}
		// The first element is the reference.
		if err := shapeForValueRecursive(shape, v.Index(0), t); err != nil {
			return err
		}
		for ii := 1; ii < v.Len(); ii++ {
			shapeTest := shapePrefix.Clone()
			if err := shapeForValueRecursive(&shapeTest, v.Index(ii), t); err != nil {
				return err
			}
			if !shape.Equal(shapeTest) {
				return errors.Errorf("sub-slices have irregular shapes, found shapes %q, and %q", shape, shapeTest)
			}
		}

	case reflect.Pointer:
		return errors.Errorf("cannot convert Pointer (%s) to a concrete value for tensors", t)

	default:
		shape.DType = dtypes.FromGoType(t)
		if shape.DType == dtypes.InvalidDType {
			return errors.Errorf("cannot convert type %s to a tensor dtype (maybe type not supported yet?)", t)
		}
	}
	return nil
}

// Equal checks whether t and otherTensor have the same shape and the same values, in logical order.
// Their layouts may differ. NaN values are never equal.
//
// Slow implementation: fine for small tensors and tests.
func (t *Tensor) Equal(otherTensor *Tensor) bool {
	if t == otherTensor {
		return true
	}
	if !t.shape.Equal(otherTensor.shape) {
		return false
	}
	v0, v1 := reflect.ValueOf(t.flat), reflect.ValueOf(otherTensor.flat)
	for _, offsets := range t.shape.IterOffsets(0, t.Size(), t.layout, otherTensor.layout) {
		if !v0.Index(offsets[0]).Equal(v1.Index(offsets[1])) {
			return false
		}
	}
	return true
}

// InDelta checks whether Abs(t - otherTensor) <= delta for every element.
// If the shapes are different, it returns false. NaNs in the same position are considered equal.
//
// Slow implementation: fine for small tensors and tests.
func (t *Tensor) InDelta(otherTensor *Tensor, delta float64) bool {
	if t == otherTensor {
		return true
	}
	if !t.shape.Equal(otherTensor.shape) {
		return false
	}
	if t.shape.IsZeroSize() {
		return true
	}
	return xslices.SlicesInDelta(toFloat64s(t), toFloat64s(otherTensor), delta)
}

// toFloat64s converts the values of t, in logical order, to float64.
func toFloat64s(t *Tensor) []float64 {
	out := make([]float64, 0, t.Size())
	flatV := reflect.ValueOf(t.flat)
	for _, pos := range t.Iter() {
		out = append(out, toFloat64(flatV.Index(pos).Interface()))
	}
	return out
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float16.Float16:
		return float64(x.Float32())
	case bfloat16.BFloat16:
		return x.Float64()
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return reflect.ValueOf(v).Convert(reflect.TypeOf(float64(0))).Float()
	}
}

// GoStr converts to string, using a Go-syntax representation of Value.
func (t *Tensor) GoStr() string {
	if t.shape.IsZeroSize() {
		return t.shape.String()
	}
	return fmt.Sprintf("%s: %#v", t.shape, t.Value())
}
