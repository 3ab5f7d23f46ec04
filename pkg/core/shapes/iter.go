// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package shapes

import (
	"iter"

	"github.com/pkg/errors"
)

// Strides returns the strides for each axis of the shape, assuming a "row-major" layout
// in memory.
//
// Notice the strides are **not in bytes**, but in elements.
func (s Shape) Strides() (strides []int) {
	rank := s.Rank()
	if rank == 0 {
		return
	}
	strides = make([]int, rank)
	currentStride := 1
	for axis := rank - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= max(s.Dimensions[axis], 1)
	}
	return
}

// Layout describes where the elements of a shape live in a flat buffer: the element at
// indices (i_0, ..., i_{n-1}) is at position Offset + Σ i_k*Strides[k].
//
// Strides can be in any order (e.g. a transposed view) and don't need to be contiguous.
type Layout struct {
	Offset  int
	Strides []int
}

// RowMajor returns the contiguous row-major layout of the shape, starting at offset 0.
func (s Shape) RowMajor() Layout {
	return Layout{Strides: s.Strides()}
}

// At returns the position in the flat buffer of the element at the given indices.
func (l Layout) At(indices []int) int {
	return l.Offset + FlatIndex(indices, l.Strides)
}

// FlatIndex returns Σ indices[axis]*strides[axis].
//
// It is the coordinate-to-offset translation of the package: with row-major strides it gives
// the logical (row-major) index; with a tensor's strides it gives the position in its buffer
// relative to the tensor's offset.
func FlatIndex(indices, strides []int) (flat int) {
	if len(indices) != len(strides) {
		panic(errors.Errorf("FlatIndex given %d indices and %d strides", len(indices), len(strides)))
	}
	for axis, idx := range indices {
		flat += idx * strides[axis]
	}
	return
}

// UnflattenIndex is the inverse of FlatIndex for row-major strides: it converts the logical
// index flat into per-axis indices for the given dimensions, and stores them in indices.
func UnflattenIndex(flat int, dimensions, indices []int) {
	for axis := len(dimensions) - 1; axis >= 0; axis-- {
		dim := dimensions[axis]
		if dim <= 0 {
			indices[axis] = 0
			continue
		}
		indices[axis] = flat % dim
		flat /= dim
	}
}

// Iter iterates sequentially over all possible indices of the given shape.
//
// It yields the flat index (counter) and a slice of indices for each axis.
//
// To avoid allocating the slice of indices, the yielded indices is owned by the Iter() method:
// don't change it inside the loop.
func (s Shape) Iter() iter.Seq2[int, []int] {
	indices := make([]int, s.Rank())
	return s.IterOn(indices)
}

// IterOn iterates over all possible indices of the given shape, in row-major order.
//
// It yields the flat index (counter) and a slice of indices for each axis.
// The iteration updates the indices on the given indices slice, which the caller shouldn't modify
// during the iteration.
//
// It expects len(indices) == s.Rank(). It will panic otherwise.
func (s Shape) IterOn(indices []int) iter.Seq2[int, []int] {
	if len(indices) != s.Rank() {
		panic(errors.Errorf("Shape.IterOn given len(indices) == %d, want it to be equal to the rank %d", len(indices), s.Rank()))
	}
	return func(yield func(int, []int) bool) {
		if s.IsZeroSize() {
			return
		}
		for axis := range indices {
			indices[axis] = 0
		}
		rank := s.Rank()
		flatIdx := 0
	yielder:
		for {
			if !yield(flatIdx, indices) {
				return
			}
			flatIdx++
			for axis := rank - 1; axis >= 0; axis-- {
				indices[axis]++
				if indices[axis] < s.Dimensions[axis] {
					continue yielder
				}
				indices[axis] = 0
			}
			// All axes overflowed (or rank is 0): done.
			return
		}
	}
}

// IterOnAxes iterates over all possible indices of the given shape's axesToIterate.
//
// It yields a flat index and the updated indices for all axes of the shape (not only the one in axes).
// The indices not pointed by axesToIterate are not touched.
//
// Args:
//   - axesToIterate: axes of the shape to iterate over. They must be 0 <= axis < rank.
//     The last one listed changes fastest.
//   - strides: used to calculate the yielded flat index, which is Σ indices*strides. If nil, it uses
//     the row-major Shape.Strides(), and the flat index is the logical index.
//     Passing the strides of a tensor's buffer makes the flat index its position in the buffer (relative
//     to the tensor's offset), regardless of the memory order.
//     If provided, it expects len(strides) == s.Rank(). It will panic otherwise.
//   - indices: slice that will be yielded during the iteration, it must have length equal to the shape's rank.
//     If it is nil, one will be allocated for the iteration.
//     The indices not in axesToIterate are left untouched, but they are used to calculate the flatIdx.
//
// Example:
//
//	// Create a shape with dimensions [2, 3, 4]
//	shape := Make(dtypes.F32, 2, 3, 4)
//
//	// Iterate over the first and last axes (0 and 2), keeping the middle axis fixed to 1.
//	indices := make([]int, shape.Rank())
//	indices[1] = 1
//	for flatIdx, indices := range shape.IterOnAxes([]int{0, 2}, nil, indices) {
//	    fmt.Printf("flatIdx=%d, indices=%v\n", flatIdx, indices)
//	}
func (s Shape) IterOnAxes(axesToIterate, strides, indices []int) iter.Seq2[int, []int] {
	rank := s.Rank()
	if strides == nil {
		strides = s.Strides()
	} else if len(strides) != rank {
		panic(errors.Errorf("Shape.IterOnAxes given len(strides) == %d, want it to be equal to the rank %d", len(strides), rank))
	}
	if indices == nil {
		indices = make([]int, rank)
	} else if len(indices) != rank {
		panic(errors.Errorf("Shape.IterOnAxes given len(indices) == %d, want it to be equal to the rank %d", len(indices), rank))
	}

	return func(yield func(int, []int) bool) {
		for _, axis := range axesToIterate {
			if axis < 0 || axis >= rank {
				panic(errors.Errorf("Shape.IterOnAxes: invalid axis %d, must be 0 <= axis < rank (%d)", axis, rank))
			}
			if s.Dimensions[axis] <= 0 {
				return
			}
			indices[axis] = 0
		}
		flatIdx := FlatIndex(indices, strides)

	yielder:
		for {
			if !yield(flatIdx, indices) {
				return
			}
			for axisIdx := len(axesToIterate) - 1; axisIdx >= 0; axisIdx-- {
				axis := axesToIterate[axisIdx]
				indices[axis]++
				flatIdx += strides[axis]
				if indices[axis] < s.Dimensions[axis] {
					continue yielder
				}
				// Carry over to the next axis.
				flatIdx -= indices[axis] * strides[axis]
				indices[axis] = 0
			}
			return
		}
	}
}

// IterOffsets walks the logical (row-major) indices in [start, end) of the shape, and for each of
// them yields the logical index and the position of that element in each of the given layouts.
//
// This is how several tensors with the same shape but arbitrary (and different) memory layouts are
// traversed in lock-step. Offsets are updated incrementally, there is no per-element multiplication.
//
// The yielded offsets slice is owned by the iterator: don't change it inside the loop.
// end is clipped to s.Size().
func (s Shape) IterOffsets(start, end int, layouts ...Layout) iter.Seq2[int, []int] {
	rank := s.Rank()
	for k, layout := range layouts {
		if len(layout.Strides) != rank {
			panic(errors.Errorf("Shape.IterOffsets: layout #%d has %d strides, want rank %d", k, len(layout.Strides), rank))
		}
	}
	return func(yield func(int, []int) bool) {
		end := min(end, s.Size())
		if start < 0 || start >= end {
			return
		}
		indices := make([]int, rank)
		UnflattenIndex(start, s.Dimensions, indices)
		offsets := make([]int, len(layouts))
		for k, layout := range layouts {
			offsets[k] = layout.At(indices)
		}
		for idx := start; idx < end; idx++ {
			if !yield(idx, offsets) {
				return
			}
			for axis := rank - 1; axis >= 0; axis-- {
				indices[axis]++
				for k := range layouts {
					offsets[k] += layouts[k].Strides[axis]
				}
				if indices[axis] < s.Dimensions[axis] {
					break
				}
				for k := range layouts {
					offsets[k] -= indices[axis] * layouts[k].Strides[axis]
				}
				indices[axis] = 0
			}
		}
	}
}
