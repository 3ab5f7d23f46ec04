// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
)

// blocks describe equally shaped groups of elements in a tensor's buffer: they share dimensions and strides,
// and each one has its own starting position.
type blocks struct {
	t       *tensors.Tensor
	shape   shapes.Shape
	strides []int
	offsets []int
}

// subTensorBlocks returns the sub-tensors of t spanning the given (normalized) axes as blocks.
func subTensorBlocks(t *tensors.Tensor, axes []int) blocks {
	b := blocks{
		t:       t,
		shape:   shapes.Make(t.DType(), t.Shape().SelectDimensions(axes)...),
		strides: make([]int, len(axes)),
		offsets: t.SubTensorOffsets(axes),
	}
	for i, axis := range axes {
		b.strides[i] = t.Strides()[axis]
	}
	return b
}

// trailingAxes returns the axes [from, rank).
func trailingAxes(from, rank int) []int {
	axes := make([]int, 0, max(rank-from, 0))
	for axis := from; axis < rank; axis++ {
		axes = append(axes, axis)
	}
	return axes
}

var (
	// copyBlocksDTypeMap: func(e *Executor, opName string, src, dst blocks, srcOf []int)
	copyBlocksDTypeMap = NewDTypeMap("CopyBlocks")

	// swapBlocksDTypeMap: func(b blocks, i, j int)
	swapBlocksDTypeMap = NewDTypeMap("SwapBlocks")
)

// copyBlocks copies into each block k of dst the block srcOf[k] of src (block k if srcOf is nil).
// Blocks of src and dst must have the same dimensions.
func (e *Executor) copyBlocks(opName string, src, dst blocks, srcOf []int) {
	fn := copyBlocksDTypeMap.MustGet(dst.t.DType()).(func(e *Executor, opName string, src, dst blocks, srcOf []int))
	fn(e, opName, src, dst, srcOf)
}

func copyBlocksGeneric[T dtypes.Supported](e *Executor, opName string, src, dst blocks, srcOf []int) {
	srcFlat, dstFlat := tensors.Flat[T](src.t), tensors.Flat[T](dst.t)
	blockSize := dst.shape.Size()
	if blockSize == 0 {
		return
	}
	e.parallelFor(opName, len(dst.offsets), blockSize, func(start, end int) {
		for k := start; k < end; k++ {
			srcK := k
			if srcOf != nil {
				srcK = srcOf[k]
			}
			srcOffset, dstOffset := src.offsets[srcK], dst.offsets[k]
			if blockSize == 1 {
				dstFlat[dstOffset] = srcFlat[srcOffset]
				continue
			}
			srcLayout := shapes.Layout{Offset: srcOffset, Strides: src.strides}
			dstLayout := shapes.Layout{Offset: dstOffset, Strides: dst.strides}
			for _, offsets := range dst.shape.IterOffsets(0, blockSize, srcLayout, dstLayout) {
				dstFlat[offsets[1]] = srcFlat[offsets[0]]
			}
		}
	})
}

// swapBlocks exchanges the contents of blocks i and j.
func swapBlocks(b blocks, i, j int) {
	swapBlocksDTypeMap.MustGet(b.t.DType()).(func(b blocks, i, j int))(b, i, j)
}

func swapBlocksGeneric[T dtypes.Supported](b blocks, i, j int) {
	if i == j {
		return
	}
	flat := tensors.Flat[T](b.t)
	blockSize := b.shape.Size()
	layoutI := shapes.Layout{Offset: b.offsets[i], Strides: b.strides}
	layoutJ := shapes.Layout{Offset: b.offsets[j], Strides: b.strides}
	for _, offsets := range b.shape.IterOffsets(0, blockSize, layoutI, layoutJ) {
		flat[offsets[0]], flat[offsets[1]] = flat[offsets[1]], flat[offsets[0]]
	}
}
