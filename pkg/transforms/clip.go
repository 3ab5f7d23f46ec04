// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"math"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
)

var (
	// clipDTypeMap: func(e *Executor, opName string, input, output *tensors.Tensor, axes []int, clipNorm float64, averaged bool)
	clipDTypeMap = NewDTypeMap("ClipByNorm")

	// clipBPDTypeMap: func(e *Executor, input, gradOutput, gradInput *tensors.Tensor, axes []int, clipNorm float64)
	clipBPDTypeMap = NewDTypeMap("ClipByNormBP")
)

// ClipByNorm rescales each slice of input whose L2 norm exceeds clipNorm. See Executor.ClipByNorm.
func ClipByNorm(input, output *tensors.Tensor, axes []int, clipNorm float64, isInplace bool) error {
	return Default().ClipByNorm(input, output, axes, clipNorm, isInplace)
}

// ClipByNorm writes input to output, rescaling each slice whose L2 norm N is larger than clipNorm
// by clipNorm/N. Slices span the given reduction axes (all axes if empty), and negative axes count from the end.
//
// If isInplace, output must be the same view as input. Only float dtypes are supported.
func (e *Executor) ClipByNorm(input, output *tensors.Tensor, axes []int, clipNorm float64, isInplace bool) error {
	return e.clip("ClipByNorm", input, output, axes, clipNorm, isInplace, false)
}

// ClipByAveraged rescales each slice of input whose averaged L2 norm exceeds clipNorm. See Executor.ClipByAveraged.
func ClipByAveraged(input, output *tensors.Tensor, axes []int, clipNorm float64, isInplace bool) error {
	return Default().ClipByAveraged(input, output, axes, clipNorm, isInplace)
}

// ClipByAveraged is like ClipByNorm, but compares the averaged norm N/sliceSize to clipNorm, and rescales
// the clipped slices by clipNorm/(N/sliceSize).
func (e *Executor) ClipByAveraged(input, output *tensors.Tensor, axes []int, clipNorm float64, isInplace bool) error {
	return e.clip("ClipByAveraged", input, output, axes, clipNorm, isInplace, true)
}

func checkClipNorm(opName string, clipNorm float64) error {
	if math.IsNaN(clipNorm) || clipNorm < 0 {
		return errorf(ErrInvalidArgument, "%s: clipNorm must be >= 0, got %g", opName, clipNorm)
	}
	return nil
}

// reductionAxes normalizes the axes of the slices, where empty means all axes.
func reductionAxes(opName string, rank int, axes []int) ([]int, error) {
	if len(axes) == 0 {
		return trailingAxes(0, rank), nil
	}
	return normalizeAxes(opName, rank, axes)
}

func (e *Executor) clip(opName string, input, output *tensors.Tensor, axes []int, clipNorm float64, isInplace, averaged bool) error {
	if err := checkNotNil(opName, []string{"input", "output"}, input, output); err != nil {
		return err
	}
	if err := checkClipNorm(opName, clipNorm); err != nil {
		return err
	}
	axes, err := reductionAxes(opName, input.Rank(), axes)
	if err != nil {
		return err
	}
	if isInplace && !output.SameView(input) {
		return errorf(ErrInvalidArgument, "%s: in-place clipping requires output to be the same view as input", opName)
	}
	if err := checkShape(opName, "output", output, input.Shape()); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}
	if err := checkElementwiseAliasing(opName, output, input); err != nil {
		return err
	}
	fn, err := clipDTypeMap.Get(input.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, opName string, input, output *tensors.Tensor, axes []int, clipNorm float64, averaged bool))(
			e, opName, input, output, axes, clipNorm, averaged)
		return nil
	})
}

func clipGeneric[T dtypes.GoFloat](e *Executor, opName string, input, output *tensors.Tensor, axes []int, clipNorm float64, averaged bool) {
	inFlat, outFlat := tensors.Flat[T](input), tensors.Flat[T](output)
	in, out := subTensorBlocks(input, axes), subTensorBlocks(output, axes)
	sliceSize := in.shape.Size()
	e.parallelFor(opName, len(in.offsets), sliceSize, func(start, end int) {
		for s := start; s < end; s++ {
			inLayout := shapes.Layout{Offset: in.offsets[s], Strides: in.strides}
			outLayout := shapes.Layout{Offset: out.offsets[s], Strides: out.strides}
			var sumSquares float64
			for _, offsets := range in.shape.IterOffsets(0, sliceSize, inLayout) {
				v := float64(inFlat[offsets[0]])
				sumSquares += v * v
			}
			norm := math.Sqrt(sumSquares)
			if averaged {
				norm /= float64(sliceSize)
			}
			clipped := norm > clipNorm
			scale := clipNorm / norm
			for _, offsets := range in.shape.IterOffsets(0, sliceSize, inLayout, outLayout) {
				if clipped {
					outFlat[offsets[1]] = T(float64(inFlat[offsets[0]]) * scale)
				} else {
					outFlat[offsets[1]] = inFlat[offsets[0]]
				}
			}
		}
	})
}

func clipHalf(e *Executor, opName string, input, output *tensors.Tensor, axes []int, clipNorm float64, averaged bool) {
	output32 := float32Like(output)
	clipGeneric[float32](e, opName, upcastHalf(input), output32, axes, clipNorm, averaged)
	storeHalf(output32, output)
}

// ClipByNormBP is the gradient of ClipByNorm with respect to its input. See Executor.ClipByNormBP.
func ClipByNormBP(input, gradOutput, gradInput *tensors.Tensor, axes []int, clipNorm float64) error {
	return Default().ClipByNormBP(input, gradOutput, gradInput, axes, clipNorm)
}

// ClipByNormBP is the gradient of ClipByNorm with respect to its input.
//
// For slices (over axes, as in ClipByNorm) of input x with norm N > clipNorm, the clipped value is
// clipNorm*x/N, and the gradient is clipNorm*(g/N - x*(x·g)/N³), where g is the slice of gradOutput.
// Other slices pass gradOutput through.
//
// input, gradOutput and gradInput must have the same shape. gradInput can be the same view as
// gradOutput or input.
func (e *Executor) ClipByNormBP(input, gradOutput, gradInput *tensors.Tensor, axes []int, clipNorm float64) error {
	const opName = "ClipByNormBP"
	if err := checkNotNil(opName, []string{"input", "gradOutput", "gradInput"}, input, gradOutput, gradInput); err != nil {
		return err
	}
	if err := checkClipNorm(opName, clipNorm); err != nil {
		return err
	}
	axes, err := reductionAxes(opName, input.Rank(), axes)
	if err != nil {
		return err
	}
	if err := checkShape(opName, "gradOutput", gradOutput, input.Shape()); err != nil {
		return err
	}
	if err := checkShape(opName, "gradInput", gradInput, input.Shape()); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "gradInput", gradInput); err != nil {
		return err
	}
	if err := checkElementwiseAliasing(opName, gradInput, input, gradOutput); err != nil {
		return err
	}
	fn, err := clipBPDTypeMap.Get(input.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, input, gradOutput, gradInput *tensors.Tensor, axes []int, clipNorm float64))(
			e, input, gradOutput, gradInput, axes, clipNorm)
		return nil
	})
}

func clipBPGeneric[T dtypes.GoFloat](e *Executor, input, gradOutput, gradInput *tensors.Tensor, axes []int, clipNorm float64) {
	xFlat, gFlat, outFlat := tensors.Flat[T](input), tensors.Flat[T](gradOutput), tensors.Flat[T](gradInput)
	x, g, out := subTensorBlocks(input, axes), subTensorBlocks(gradOutput, axes), subTensorBlocks(gradInput, axes)
	sliceSize := x.shape.Size()
	e.parallelFor("ClipByNormBP", len(x.offsets), sliceSize, func(start, end int) {
		for s := start; s < end; s++ {
			xLayout := shapes.Layout{Offset: x.offsets[s], Strides: x.strides}
			gLayout := shapes.Layout{Offset: g.offsets[s], Strides: g.strides}
			outLayout := shapes.Layout{Offset: out.offsets[s], Strides: out.strides}
			var sumSquares, dot float64
			for _, offsets := range x.shape.IterOffsets(0, sliceSize, xLayout, gLayout) {
				xv, gv := float64(xFlat[offsets[0]]), float64(gFlat[offsets[1]])
				sumSquares += xv * xv
				dot += xv * gv
			}
			norm := math.Sqrt(sumSquares)
			clipped := norm > clipNorm
			norm3 := norm * norm * norm
			for _, offsets := range x.shape.IterOffsets(0, sliceSize, xLayout, gLayout, outLayout) {
				gv := gFlat[offsets[1]]
				if !clipped {
					outFlat[offsets[2]] = gv
					continue
				}
				xv := float64(xFlat[offsets[0]])
				outFlat[offsets[2]] = T(clipNorm * (float64(gv)/norm - xv*dot/norm3))
			}
		}
	})
}

func clipBPHalf(e *Executor, input, gradOutput, gradInput *tensors.Tensor, axes []int, clipNorm float64) {
	gradInput32 := float32Like(gradInput)
	clipBPGeneric[float32](e, upcastHalf(input), upcastHalf(gradOutput), gradInput32, axes, clipNorm)
	storeHalf(gradInput32, gradInput)
}
