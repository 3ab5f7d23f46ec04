// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"iter"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/support/sets"
	"github.com/pkg/errors"
)

// view returns a tensor sharing t's buffer with the given dimensions and layout.
// Dimensions and strides are owned by the new tensor.
func (t *Tensor) view(dimensions []int, layout shapes.Layout) *Tensor {
	return &Tensor{
		shape:  shapes.Shape{DType: t.shape.DType, Dimensions: dimensions},
		layout: layout,
		flat:   t.flat,
	}
}

// Narrow returns a view of t restricted to [start, start+length) along axis. Negative axis counts from the end.
func (t *Tensor) Narrow(axis, start, length int) (*Tensor, error) {
	adjusted, err := shapes.AdjustAxisToRank(axis, t.Rank())
	if err != nil {
		return nil, errors.WithMessage(err, "Tensor.Narrow")
	}
	dim := t.shape.Dimensions[adjusted]
	if start < 0 || length < 0 || start+length > dim {
		return nil, errors.Errorf("Tensor.Narrow: range [%d, %d) is out of bounds for axis %d of shape %s",
			start, start+length, adjusted, t.shape)
	}
	dims := slices.Clone(t.shape.Dimensions)
	dims[adjusted] = length
	layout := shapes.Layout{Offset: t.layout.Offset, Strides: slices.Clone(t.layout.Strides)}
	if length > 0 {
		layout.Offset += start * t.layout.Strides[adjusted]
	}
	return t.view(dims, layout), nil
}

// Transpose returns a view of t with its axes permuted: axis i of the result is axis permutation[i] of t.
func (t *Tensor) Transpose(permutation ...int) (*Tensor, error) {
	rank := t.Rank()
	if len(permutation) != rank {
		return nil, errors.Errorf("Tensor.Transpose: permutation %v has length %d, but tensor has rank %d",
			permutation, len(permutation), rank)
	}
	seen := sets.Make[int](rank)
	dims := make([]int, rank)
	layout := shapes.Layout{Offset: t.layout.Offset, Strides: make([]int, rank)}
	for to, from := range permutation {
		if from < 0 || from >= rank || !seen.InsertNew(from) {
			return nil, errors.Errorf("Tensor.Transpose: %v is not a permutation of the %d axes", permutation, rank)
		}
		dims[to] = t.shape.Dimensions[from]
		layout.Strides[to] = t.layout.Strides[from]
	}
	return t.view(dims, layout), nil
}

// checkSubTensorAxes panics if axes are not sorted, unique and within the rank.
func (t *Tensor) checkSubTensorAxes(axes []int) {
	for i, axis := range axes {
		if axis < 0 || axis >= t.Rank() || (i > 0 && axis <= axes[i-1]) {
			exceptions.Panicf("sub-tensor axes %v must be sorted, unique and in [0, %d), see shapes.NormalizeAxes",
				axes, t.Rank())
		}
	}
}

// NumSubTensors returns the number of sub-tensors spanning the given axes: the product of the dimensions
// of the other axes.
func (t *Tensor) NumSubTensors(axes []int) int {
	t.checkSubTensorAxes(axes)
	return shapes.Make(t.DType(), t.shape.SelectDimensions(shapes.ComplementAxes(t.Rank(), axes))...).Size()
}

// subTensorLayout returns the dimensions and strides of the sub-tensors spanning axes.
func (t *Tensor) subTensorLayout(axes []int) (dims, strides []int) {
	dims = t.shape.SelectDimensions(axes)
	strides = make([]int, len(axes))
	for i, axis := range axes {
		strides[i] = t.layout.Strides[axis]
	}
	return
}

// SubTensors iterates over the sub-tensors of t spanning the given axes (a "slice" for each
// combination of indices of the other axes), in row-major order of those other axes.
// It yields the sub-tensor number and a view sharing t's buffer.
//
// The axes must be normalized (sorted, unique and non-negative), see shapes.NormalizeAxes.
// An empty list of axes yields one scalar view per element of t. Listing all axes yields t itself
// (as a new view).
func (t *Tensor) SubTensors(axes []int) iter.Seq2[int, *Tensor] {
	t.checkSubTensorAxes(axes)
	outerAxes := shapes.ComplementAxes(t.Rank(), axes)
	return func(yield func(int, *Tensor) bool) {
		// The sub-tensor axes indices stay at 0 during the iteration, so the yielded flat index is the
		// position of the first element of each sub-tensor, relative to the offset.
		indices := make([]int, t.Rank())
		i := 0
		for flatIdx := range t.shape.IterOnAxes(outerAxes, t.layout.Strides, indices) {
			dims, strides := t.subTensorLayout(axes)
			if !yield(i, t.view(dims, shapes.Layout{Offset: t.layout.Offset + flatIdx, Strides: strides})) {
				return
			}
			i++
		}
	}
}

// SubTensorAt returns the i-th sub-tensor spanning the given axes, in the order of SubTensors.
//
// It panics if i is out of range.
func (t *Tensor) SubTensorAt(axes []int, i int) *Tensor {
	t.checkSubTensorAxes(axes)
	outerAxes := shapes.ComplementAxes(t.Rank(), axes)
	outerDims := t.shape.SelectDimensions(outerAxes)
	if num := shapes.Make(t.DType(), outerDims...).Size(); i < 0 || i >= num {
		exceptions.Panicf("Tensor.SubTensorAt(%v, %d): only %d sub-tensors in shape %s", axes, i, num, t.shape)
	}
	outerIndices := make([]int, len(outerAxes))
	shapes.UnflattenIndex(i, outerDims, outerIndices)
	offset := t.layout.Offset
	for k, axis := range outerAxes {
		offset += outerIndices[k] * t.layout.Strides[axis]
	}
	dims, strides := t.subTensorLayout(axes)
	return t.view(dims, shapes.Layout{Offset: offset, Strides: strides})
}

// Iter iterates over the elements of t in logical (row-major) order, yielding the logical index and
// the position of the element in the buffer.
func (t *Tensor) Iter() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for idx, offsets := range t.shape.IterOffsets(0, t.Size(), t.layout) {
			if !yield(idx, offsets[0]) {
				return
			}
		}
	}
}

// Clone returns a copy of t with a newly allocated contiguous (row-major) buffer.
func (t *Tensor) Clone() *Tensor {
	c := FromShape(t.shape)
	copyDispatch[t.DType()](t, c)
	return c
}

// SubTensorOffsets returns the buffer position of the first element of each sub-tensor spanning the given
// axes, in the order of SubTensors. With the strides of those axes, it addresses the elements of every
// sub-tensor without creating views.
//
// The axes must be normalized (sorted, unique and non-negative), see shapes.NormalizeAxes.
func (t *Tensor) SubTensorOffsets(axes []int) []int {
	t.checkSubTensorAxes(axes)
	outerAxes := shapes.ComplementAxes(t.Rank(), axes)
	offsets := make([]int, 0, t.NumSubTensors(axes))
	for flatIdx := range t.shape.IterOnAxes(outerAxes, t.layout.Strides, make([]int, t.Rank())) {
		offsets = append(offsets, t.layout.Offset+flatIdx)
	}
	return offsets
}
