// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tensors implement a `Tensor`, a descriptor of a multidimensional array whose values live in a
// flat Go slice owned by the caller.
//
// A Tensor is defined by its shape (a data type and its axes' dimensions), a layout (offset and per-axis
// strides, in elements) and the flat slice it borrows. The layout can be anything that maps every valid
// coordinate inside the slice: row-major, column-major, transposed, narrowed, or with repeated positions
// (zero strides). No function in this module retains a Tensor after it returns.
//
// There are various ways to construct a Tensor:
//
//   - FromShape(shape shapes.Shape): allocates a new row-major buffer with zero values.
//
//   - FromFlatDataAndDimensions[T dtypes.Supported](data []T, dimensions ...int): borrows data as a
//     row-major buffer with the given dimensions. Example:
//
//     t := FromFlatDataAndDimensions([]int8{1, 2, 3, 4}, 2, 2) // Tensor with [[1,2], [3,4]]
//
//   - FromFlatDataWithLayout[T dtypes.Supported](data []T, dimensions []int, layout shapes.Layout): borrows
//     data with an arbitrary layout, checked to stay within the slice.
//
//   - FromValue[S MultiDimensionSlice](value S): copies a Go scalar or multidimensional slice. Example:
//
//     t := FromValue([][]float32{{1,2}, {3, 5}, {7, 11}})
//
// Views over the same buffer are created with Tensor.Narrow, Tensor.Transpose and Tensor.SubTensors.
package tensors

import (
	"reflect"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/pkg/errors"
)

// Tensor describes a multidimensional array stored in a borrowed flat slice.
//
// The element at indices (i_0, ..., i_{n-1}) is at flat[offset + Σ i_k*strides[k]].
// A Tensor is immutable (its values are not), and it is safe to share it among goroutines as long as
// the writes to its buffer are synchronized by the caller.
type Tensor struct {
	shape  shapes.Shape
	layout shapes.Layout

	// flat is a []T, where T is the Go type for shape.DType.
	flat any
}

// FromShape returns a tensor with the given shape backed by a newly allocated row-major buffer
// filled with zeros.
func FromShape(shape shapes.Shape) *Tensor {
	if !shape.DType.IsSupported() {
		exceptions.Panicf("tensors.FromShape(%s): dtype not supported", shape)
	}
	flat := reflect.MakeSlice(reflect.SliceOf(shape.DType.GoType()), shape.Size(), shape.Size()).Interface()
	return &Tensor{shape: shape.Clone(), layout: shape.RowMajor(), flat: flat}
}

// FromFlatDataAndDimensions returns a tensor with the given dimensions that borrows data as its row-major
// buffer: changes to the tensor are visible in data and vice versa.
// The `DType` is inferred from the `data` type.
//
// It panics if the size of data is wrong for the shape.
func FromFlatDataAndDimensions[T dtypes.Supported](data []T, dimensions ...int) *Tensor {
	shape := shapes.Make(dtypes.FromGenericsType[T](), dimensions...)
	if len(data) != shape.Size() {
		exceptions.Panicf("FromFlatDataAndDimensions(%s): data size is %d, but dimensions size is %d",
			shape, len(data), shape.Size())
	}
	return &Tensor{shape: shape, layout: shape.RowMajor(), flat: data}
}

// FromFlatDataWithLayout returns a tensor with the given dimensions that borrows data, with an arbitrary
// layout (offset and strides in elements).
//
// It returns an error if len(layout.Strides) doesn't match the rank, or if any coordinate within the
// dimensions would address a position outside of data.
func FromFlatDataWithLayout[T dtypes.Supported](data []T, dimensions []int, layout shapes.Layout) (*Tensor, error) {
	for _, dim := range dimensions {
		if dim < 0 {
			return nil, errors.Errorf("FromFlatDataWithLayout: invalid dimensions %v", dimensions)
		}
	}
	shape := shapes.Make(dtypes.FromGenericsType[T](), dimensions...)
	layout = shapes.Layout{Offset: layout.Offset, Strides: slices.Clone(layout.Strides)}
	if err := checkLayout(shape, layout, len(data)); err != nil {
		return nil, err
	}
	return &Tensor{shape: shape, layout: layout, flat: data}, nil
}

// checkLayout verifies that every coordinate of shape maps inside a buffer of bufferLen elements.
func checkLayout(shape shapes.Shape, layout shapes.Layout, bufferLen int) error {
	if len(layout.Strides) != shape.Rank() {
		return errors.Errorf("layout has %d strides, but shape %s has rank %d", len(layout.Strides), shape, shape.Rank())
	}
	if shape.IsZeroSize() {
		return nil
	}
	lowest, highest := layout.Offset, layout.Offset
	for axis, stride := range layout.Strides {
		extent := (shape.Dimensions[axis] - 1) * stride
		if extent < 0 {
			lowest += extent
		} else {
			highest += extent
		}
	}
	if lowest < 0 || highest >= bufferLen {
		return errors.Errorf("layout (offset=%d, strides=%v) for shape %s addresses positions [%d, %d], "+
			"outside of the buffer of length %d", layout.Offset, layout.Strides, shape, lowest, highest, bufferLen)
	}
	return nil
}

// FromScalar creates a tensor with the given scalar. The `DType` is inferred from the value.
func FromScalar[T dtypes.Supported](value T) *Tensor {
	return FromFlatDataAndDimensions([]T{value})
}

// Shape of the tensor.
func (t *Tensor) Shape() shapes.Shape { return t.shape }

// DType of the tensor's shape.
func (t *Tensor) DType() dtypes.DType { return t.shape.DType }

// Rank of the tensor's shape.
func (t *Tensor) Rank() int { return t.shape.Rank() }

// Size returns the number of elements of the tensor (not of its buffer).
func (t *Tensor) Size() int { return t.shape.Size() }

// IsScalar returns whether the tensor represents a scalar value.
func (t *Tensor) IsScalar() bool { return t.shape.IsScalar() }

// Layout returns the offset and strides of the tensor in its buffer.
// The returned strides must not be modified.
func (t *Tensor) Layout() shapes.Layout { return t.layout }

// Strides returns the per-axis strides, in elements. The returned slice must not be modified.
func (t *Tensor) Strides() []int { return t.layout.Strides }

// Offset returns the position in the buffer of the element at the given indices.
// With no indices, it returns the position of the first element.
//
// It panics if the indices are out of bounds.
func (t *Tensor) Offset(indices ...int) int {
	if len(indices) == 0 {
		return t.layout.Offset
	}
	if len(indices) != t.Rank() {
		exceptions.Panicf("Tensor.Offset given %d indices for a tensor of rank %d", len(indices), t.Rank())
	}
	for axis, idx := range indices {
		if idx < 0 || idx >= t.shape.Dimensions[axis] {
			exceptions.Panicf("Tensor.Offset: index %d out of bounds for axis %d of shape %s", idx, axis, t.shape)
		}
	}
	return t.layout.At(indices)
}

// FlatAny returns the borrowed buffer, a []T for the tensor's DType.
func (t *Tensor) FlatAny() any { return t.flat }

// Flat returns the borrowed buffer as a []T.
//
// It panics if T doesn't match the tensor's DType.
func Flat[T dtypes.Supported](t *Tensor) []T {
	flat, ok := t.flat.([]T)
	if !ok {
		var zero T
		exceptions.Panicf("tensors.Flat[%T] called on tensor of dtype %s", zero, t.shape.DType)
	}
	return flat
}

// IsContiguous returns whether the elements are stored in row-major order without gaps.
func (t *Tensor) IsContiguous() bool {
	rowMajor := t.shape.Strides()
	for axis, stride := range t.layout.Strides {
		if t.shape.Dimensions[axis] > 1 && stride != rowMajor[axis] {
			return false
		}
	}
	return true
}

// HasDistinctPositions returns whether every coordinate of t maps to a different position of its buffer,
// which is required to write to t.
//
// The axes are sorted by |stride|, and each must skip over the whole span covered by the axes with smaller
// strides. Some exotic interleaved layouts without collisions are rejected as well.
func (t *Tensor) HasDistinctPositions() bool {
	if t.Size() <= 1 {
		return true
	}
	type axisSpan struct{ stride, dim int }
	axes := make([]axisSpan, 0, t.Rank())
	for axis, stride := range t.layout.Strides {
		dim := t.shape.Dimensions[axis]
		if dim <= 1 {
			continue
		}
		if stride < 0 {
			stride = -stride
		}
		axes = append(axes, axisSpan{stride, dim})
	}
	slices.SortFunc(axes, func(a, b axisSpan) int { return a.stride - b.stride })
	span := 0
	for _, a := range axes {
		if a.stride <= span {
			return false
		}
		span += (a.dim - 1) * a.stride
	}
	return true
}

// bufferRange returns the address range [start, end) of the buffer.
func (t *Tensor) bufferRange() (start, end uintptr) {
	v := reflect.ValueOf(t.flat)
	if v.Len() == 0 {
		return 0, 0
	}
	start = v.Pointer()
	end = start + uintptr(v.Len())*v.Type().Elem().Size()
	return
}

// SharesStorage returns whether the buffers of t and other overlap in memory. Two views of the same
// buffer (see Narrow, Transpose, SubTensors) share storage, even if the elements they address are disjoint.
func (t *Tensor) SharesStorage(other *Tensor) bool {
	if t == other {
		return true
	}
	s0, e0 := t.bufferRange()
	s1, e1 := other.bufferRange()
	if s0 == e0 || s1 == e1 {
		return false
	}
	return s0 < e1 && s1 < e0
}

// SameView returns whether t and other address exactly the same elements of the same buffer:
// same dtype, dimensions, layout and buffer start.
func (t *Tensor) SameView(other *Tensor) bool {
	if t == other {
		return true
	}
	s0, _ := t.bufferRange()
	s1, _ := other.bufferRange()
	return s0 == s1 && t.shape.Equal(other.shape) && t.layout.Offset == other.layout.Offset &&
		slices.Equal(t.layout.Strides, other.layout.Strides)
}

// Memory returns the number of bytes used by the elements of the tensor (not of its buffer).
func (t *Tensor) Memory() uintptr {
	return t.shape.Memory()
}
