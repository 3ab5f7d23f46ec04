// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package shapes defines Shape and the coordinate tools (the "indexer") used by the transforms.
//
// Shape represents the shape (rank, dimensions and DType) of a tensor. The memory layout (strides)
// is not part of the shape: a shape only describes the logical coordinates, and the strides are
// supplied by whoever owns the buffer (see package tensors).
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a Tensor.
//   - Axis: is the index of a dimension on a multidimensional Tensor. Here we refer to a dimension
//     index as "axis" (plural axes), and its size as its dimension.
//   - Dimension: the size of a multi-dimensions Tensor in one of its axes.
//   - DType: the data type of the unit element in a tensor. See package dtypes.
//   - Stride: the number of elements (not bytes) to move in memory when the index of one axis
//     increases by one.
//   - Scalar: is a shape where there are no axes (or dimensions), only a single value
//     of the associated DType.
//
// Example: The multi-dimensional array `[][]int32{{0, 1, 2}, {3, 4, 5}}` if converted to a Tensor
// would have shape `(Int32)[2 3]`. We say it has rank 2 (so 2 axes), axis 0 has
// dimension 2, and axis 1 has dimension 3. This shape could be created with
// `shapes.Make(dtypes.Int32, 2, 3)`.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
)

// Shape represents the shape of a Tensor.
//
// Use Make to create a new shape. See example in package shapes documentation.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape structure filled with the values given.
//
// Dimensions can be 0 (an empty tensor), but not negative.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions), DType: dtype}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension < 0", s)
		}
	}
	return s
}

// Scalar returns a scalar Shape for the given type.
func Scalar[T dtypes.Supported]() Shape {
	return Shape{DType: dtypes.FromGenericsType[T]()}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape represents a scalar, that is there are no dimensions (rank==0).
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// IsZeroSize returns whether any of the axes has dimension 0, in which case the shape holds no elements.
func (s Shape) IsZeroSize() bool { return slices.Contains(s.Dimensions, 0) }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Shape returns a shallow copy of itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// String implements stringer, pretty-prints the shape.
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// Size returns the number of elements of DType are needed for this shape. It's the product of all dimensions.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Memory returns the number of bytes used to store a contiguous array of the given shape.
func (s Shape) Memory() uintptr {
	return uintptr(s.DType.Size() * s.Size())
}

// Equal compares two shapes for equality: dtype and dimensions are compared.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && slices.Equal(s.Dimensions, s2.Dimensions)
}

// EqualDimensions compares two shapes for equality of dimensions. Dtypes can be different.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Dimensions = slices.Clone(s.Dimensions)
	return
}

// WithDType returns a copy of the shape with the dtype replaced.
func (s Shape) WithDType(dtype dtypes.DType) Shape {
	s2 := s.Clone()
	s2.DType = dtype
	return s2
}

// HasShape is implemented by anything that has a Shape, like a tensors.Tensor.
type HasShape interface {
	Shape() Shape
}

// ConcatenateDimensions of two shapes. The resulting rank is the sum of both ranks. They must
// have the same dtype, otherwise an invalid shape is returned.
func ConcatenateDimensions(s1, s2 Shape) (shape Shape) {
	if s1.DType != s2.DType {
		return Invalid()
	}
	shape.DType = s1.DType
	shape.Dimensions = make([]int, 0, s1.Rank()+s2.Rank())
	shape.Dimensions = append(shape.Dimensions, s1.Dimensions...)
	shape.Dimensions = append(shape.Dimensions, s2.Dimensions...)
	return
}
