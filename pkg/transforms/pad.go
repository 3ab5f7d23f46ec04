// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/support/xslices"
	"github.com/pkg/errors"
)

// PadMode defines how the padded region is filled.
type PadMode int

const (
	// PadConstant fills the padding with a constant value.
	PadConstant PadMode = iota

	// PadReflect mirrors the values around the edge element, excluding it: [1 2 3] padded by 2 on both
	// sides is [3 2 1 2 3 2 1]. The padding must be smaller than the dimension.
	PadReflect

	// PadSymmetric mirrors the values including the edge element: [1 2 3] padded by 2 on both sides
	// is [2 1 1 2 3 3 2]. The padding must be at most the dimension.
	PadSymmetric
)

var (
	// padDTypeMap: func(e *Executor, mode PadMode, input, output *tensors.Tensor, pads []int, padValue float64)
	padDTypeMap = NewDTypeMap("Pad")

	// mirrorPadDTypeMap: func(e *Executor, mode PadMode, input, output *tensors.Tensor, pads []int)
	mirrorPadDTypeMap = NewDTypeMap("MirrorPad")
)

// mirrorIndex returns the input index along an axis for the output index p, for the PadReflect and
// PadSymmetric modes, given the padding before the axis and its input dimension.
func mirrorIndex(mode PadMode, p, before, dim int) int {
	q := p - before
	switch {
	case q < 0:
		if mode == PadReflect {
			return -q
		}
		return -q - 1
	case q >= dim:
		if mode == PadReflect {
			return 2*(dim-1) - q
		}
		return 2*dim - 1 - q
	}
	return q
}

// Pad copies input to the interior of output and fills the padding. See Executor.Pad.
func Pad(mode PadMode, input, paddings, output *tensors.Tensor, padValue float64) error {
	return Default().Pad(mode, input, paddings, output, padValue)
}

// Pad copies input to the interior of output, and fills the padding according to mode.
//
// paddings is an integer tensor shaped [rank, 2], with the number of elements to add before and after
// each axis. output dimensions are input's plus the paddings. padValue is used by PadConstant, converted
// to the dtype of input.
//
// PadReflect requires paddings smaller than the dimension, and PadSymmetric at most the dimension.
func (e *Executor) Pad(mode PadMode, input, paddings, output *tensors.Tensor, padValue float64) error {
	const opName = "Pad"
	pads, err := checkPad(opName, mode, input, paddings, output)
	if err != nil {
		return err
	}
	fn, err := padDTypeMap.Get(input.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, mode PadMode, input, output *tensors.Tensor, pads []int, padValue float64))(
			e, mode, input, output, pads, padValue)
		return nil
	})
}

// MirrorPad is Pad for the PadReflect and PadSymmetric modes, computed by mapping each output element
// to its input element. See Executor.MirrorPad.
func MirrorPad(input, paddings, output *tensors.Tensor, mode PadMode) error {
	return Default().MirrorPad(input, paddings, output, mode)
}

// MirrorPad is Pad for the PadReflect and PadSymmetric modes, computed by mapping each output element
// to its input element. It is parallelized over the output elements.
func (e *Executor) MirrorPad(input, paddings, output *tensors.Tensor, mode PadMode) error {
	const opName = "MirrorPad"
	if mode != PadReflect && mode != PadSymmetric {
		return errorf(ErrInvalidArgument, "%s: mode must be Reflect or Symmetric, got %s", opName, mode)
	}
	pads, err := checkPad(opName, mode, input, paddings, output)
	if err != nil {
		return err
	}
	fn, err := mirrorPadDTypeMap.Get(input.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, mode PadMode, input, output *tensors.Tensor, pads []int))(e, mode, input, output, pads)
		return nil
	})
}

// checkPad validates the arguments of Pad and MirrorPad, and returns the paddings as a flat list
// [before_0, after_0, before_1, after_1, ...].
func checkPad(opName string, mode PadMode, input, paddings, output *tensors.Tensor) ([]int, error) {
	if err := checkNotNil(opName, []string{"input", "paddings", "output"}, input, paddings, output); err != nil {
		return nil, err
	}
	if !mode.IsAPadMode() {
		return nil, errorf(ErrInvalidArgument, "%s: invalid mode %s", opName, mode)
	}
	rank := input.Rank()
	if dims := paddings.Shape().Dimensions; len(dims) != 2 || dims[0] != rank || dims[1] != 2 {
		return nil, errorf(ErrShapeMismatch, "%s: paddings must be shaped [%d, 2], got %s", opName, rank, paddings.Shape())
	}
	pads, err := readIndices(paddings)
	if err != nil {
		return nil, errors.WithMessage(err, opName)
	}
	outputDims := make([]int, rank)
	for axis, dim := range input.Shape().Dimensions {
		before, after := pads[2*axis], pads[2*axis+1]
		if before < 0 || after < 0 {
			return nil, errorf(ErrShapeMismatch, "%s: negative padding (%d, %d) for axis %d", opName, before, after, axis)
		}
		switch mode {
		case PadReflect:
			if (before > 0 && before >= dim) || (after > 0 && after >= dim) {
				return nil, errorf(ErrShapeMismatch, "%s: reflect padding (%d, %d) must be smaller than dimension %d of axis %d",
					opName, before, after, dim, axis)
			}
		case PadSymmetric:
			if before > dim || after > dim {
				return nil, errorf(ErrShapeMismatch, "%s: symmetric padding (%d, %d) can't exceed dimension %d of axis %d",
					opName, before, after, dim, axis)
			}
		}
		outputDims[axis] = before + dim + after
	}
	if err := checkShape(opName, "output", output, shapes.Make(input.DType(), outputDims...)); err != nil {
		return nil, err
	}
	if err := checkNoOverlap(opName, output, input, paddings); err != nil {
		return nil, err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return nil, err
	}
	return pads, nil
}

// padFrame is one level of the descent over the axes: the interior indices of axis are visited in order,
// and then its padding is filled.
type padFrame struct {
	axis                int
	next                int // Next interior index along axis.
	inOffset, outOffset int // Positions with the axes before axis fixed, and axis at 0.
}

type padder[T dtypes.Supported] struct {
	mode                  PadMode
	in, out               []T
	inDims, outDims       []int
	inStrides, outStrides []int
	pads                  []int
	padValue              T

	// tails[axis] is the shape of the output block spanning the axes after axis.
	tails []shapes.Shape
}

func execPadGeneric[T dtypes.Supported](e *Executor, mode PadMode, input, output *tensors.Tensor, pads []int, padValue float64) {
	if output.Size() == 0 {
		return
	}
	rank := input.Rank()
	p := &padder[T]{
		mode:       mode,
		in:         tensors.Flat[T](input),
		out:        tensors.Flat[T](output),
		inDims:     input.Shape().Dimensions,
		outDims:    output.Shape().Dimensions,
		inStrides:  input.Strides(),
		outStrides: output.Strides(),
		pads:       pads,
		padValue:   fromFloat64[T](padValue),
		tails:      make([]shapes.Shape, rank),
	}
	for axis := range rank {
		p.tails[axis] = shapes.Make(output.DType(), p.outDims[axis+1:]...)
	}
	inOffset, outOffset := input.Layout().Offset, output.Layout().Offset
	if rank < 2 {
		p.descend(0, inOffset, outOffset)
		return
	}

	// The interior of the first axis is split among the workers, and its padding filled at the end.
	e.parallelFor("Pad", p.inDims[0], p.tails[0].Size(), func(start, end int) {
		for i := start; i < end; i++ {
			p.descend(1, inOffset+i*p.inStrides[0], outOffset+(pads[0]+i)*p.outStrides[0])
		}
	})
	p.fillPadding(0, outOffset)
}

// descend fills the output block spanning axis and the ones after it: the interior is copied from the input,
// and the padding of each axis is filled once the blocks it mirrors are complete.
func (p *padder[T]) descend(axis, inOffset, outOffset int) {
	rank := len(p.inDims)
	if rank == 0 {
		p.out[outOffset] = p.in[inOffset]
		return
	}
	stack := make([]padFrame, 1, rank-axis)
	stack[0] = padFrame{axis: axis, inOffset: inOffset, outOffset: outOffset}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		a := top.axis
		if a == rank-1 {
			before, inStride, outStride := p.pads[2*a], p.inStrides[a], p.outStrides[a]
			for i := range p.inDims[a] {
				p.out[top.outOffset+(before+i)*outStride] = p.in[top.inOffset+i*inStride]
			}
			p.fillPadding(a, top.outOffset)
			stack = stack[:len(stack)-1]
			continue
		}
		if top.next < p.inDims[a] {
			i := top.next
			top.next++
			stack = append(stack, padFrame{
				axis:      a + 1,
				inOffset:  top.inOffset + i*p.inStrides[a],
				outOffset: top.outOffset + (p.pads[2*a]+i)*p.outStrides[a],
			})
			continue
		}
		p.fillPadding(a, top.outOffset)
		stack = stack[:len(stack)-1]
	}
}

// fillPadding fills the padding along axis of the output block at outOffset (with axis at 0). The blocks
// of the following axes are filled in their full (padded) extent.
func (p *padder[T]) fillPadding(axis, outOffset int) {
	before, dim, outDim, stride := p.pads[2*axis], p.inDims[axis], p.outDims[axis], p.outStrides[axis]
	tail := p.tails[axis]
	tailStrides := p.outStrides[axis+1:]
	fill := func(pos int) {
		dst := shapes.Layout{Offset: outOffset + pos*stride, Strides: tailStrides}
		if p.mode == PadConstant {
			for _, offsets := range tail.IterOffsets(0, tail.Size(), dst) {
				p.out[offsets[0]] = p.padValue
			}
			return
		}
		srcPos := before + mirrorIndex(p.mode, pos, before, dim)
		src := shapes.Layout{Offset: outOffset + srcPos*stride, Strides: tailStrides}
		for _, offsets := range tail.IterOffsets(0, tail.Size(), src, dst) {
			p.out[offsets[1]] = p.out[offsets[0]]
		}
	}
	for pos := range before {
		fill(pos)
	}
	for pos := before + dim; pos < outDim; pos++ {
		fill(pos)
	}
}

func execMirrorPadGeneric[T dtypes.Supported](e *Executor, mode PadMode, input, output *tensors.Tensor, pads []int) {
	rank := input.Rank()
	inFlat, outFlat := tensors.Flat[T](input), tensors.Flat[T](output)
	inDims, outDims := input.Shape().Dimensions, output.Shape().Dimensions
	inStrides, outStrides := input.Strides(), output.Strides()

	// sources[axis][p] is the buffer displacement in input for output index p along axis.
	sources := make([][]int, rank)
	for axis := range rank {
		sources[axis] = make([]int, outDims[axis])
		for pos := range outDims[axis] {
			sources[axis][pos] = mirrorIndex(mode, pos, pads[2*axis], inDims[axis]) * inStrides[axis]
		}
	}
	size := xslices.Product(outDims)
	e.parallelFor("MirrorPad", size, 1, func(start, end int) {
		coords := make([]int, rank)
		shapes.UnflattenIndex(start, outDims, coords)
		for range end - start {
			inPos, outPos := input.Layout().Offset, output.Layout().Offset
			for axis, c := range coords {
				inPos += sources[axis][c]
				outPos += c * outStrides[axis]
			}
			outFlat[outPos] = inFlat[inPos]
			for axis := rank - 1; axis >= 0; axis-- {
				coords[axis]++
				if coords[axis] < outDims[axis] {
					break
				}
				coords[axis] = 0
			}
		}
	})
}
