// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"slices"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/pkg/errors"
)

// matrices describes the inner matrices of a tensor: the last two axes, or a single row for rank 1 tensors.
type matrices struct {
	blocks
	rows, cols           int
	rowStride, colStride int
}

func matricesOf(t *tensors.Tensor) matrices {
	rank := t.Rank()
	if rank == 1 {
		b := subTensorBlocks(t, []int{0})
		return matrices{blocks: b, rows: 1, cols: t.Shape().Dim(0), colStride: b.strides[0]}
	}
	b := subTensorBlocks(t, []int{rank - 2, rank - 1})
	return matrices{
		blocks: b, rows: t.Shape().Dim(-2), cols: t.Shape().Dim(-1),
		rowStride: b.strides[0], colStride: b.strides[1],
	}
}

// at returns the buffer position of element (row, col) of the m-th matrix.
func (m matrices) at(matrix, row, col int) int {
	return m.offsets[matrix] + row*m.rowStride + col*m.colStride
}

var (
	// triuDTypeMap: func(e *Executor, opName string, src, dst matrices, diagonal int)
	triuDTypeMap = NewDTypeMap("Triu")

	// traceDTypeMap: func(e *Executor, input, output *tensors.Tensor)
	traceDTypeMap = NewDTypeMap("Trace")

	// eyeDTypeMap: func(e *Executor, output *tensors.Tensor)
	eyeDTypeMap = NewDTypeMap("Eye")
)

// Triu copies input to output, zeroing the elements below the given diagonal of each inner matrix:
// element (i, j) is kept if j-i >= diagonal. See Executor.Triu.
func Triu(input, output *tensors.Tensor, diagonal int) error {
	return Default().Triu(input, output, diagonal)
}

// Triu copies input to output, zeroing the elements below the given diagonal of each inner matrix:
// element (i, j) is kept if j-i >= diagonal.
//
// The inner matrices are formed by the last two axes, and a rank 1 input is taken as a single row.
// output must have the same shape as input, and it can be the input itself.
func (e *Executor) Triu(input, output *tensors.Tensor, diagonal int) error {
	const opName = "Triu"
	if err := checkNotNil(opName, []string{"input", "output"}, input, output); err != nil {
		return err
	}
	if err := e.checkTriu(opName, input, output, input.Shape()); err != nil {
		return err
	}
	return e.execTriu(opName, input, output, diagonal)
}

// TriuBP is the gradient of Triu with respect to its input. See Executor.TriuBP.
func TriuBP(input, gradOutput, gradInput *tensors.Tensor, diagonal int) error {
	return Default().TriuBP(input, gradOutput, gradInput, diagonal)
}

// TriuBP is the gradient of Triu with respect to its input: gradInput is gradOutput with the elements below
// the diagonal zeroed.
//
// input is only used for its shape, gradOutput and gradInput must have the same shape.
// gradInput can be gradOutput itself.
func (e *Executor) TriuBP(input, gradOutput, gradInput *tensors.Tensor, diagonal int) error {
	const opName = "TriuBP"
	if err := checkNotNil(opName, []string{"input", "gradOutput", "gradInput"}, input, gradOutput, gradInput); err != nil {
		return err
	}
	if err := checkShape(opName, "gradOutput", gradOutput, input.Shape()); err != nil {
		return err
	}
	if err := e.checkTriu(opName, gradOutput, gradInput, input.Shape()); err != nil {
		return err
	}
	return e.execTriu(opName, gradOutput, gradInput, diagonal)
}

func (e *Executor) checkTriu(opName string, src, dst *tensors.Tensor, shape shapes.Shape) error {
	if err := checkMinRank(opName, "input", src, 1); err != nil {
		return err
	}
	if err := checkShape(opName, "output", dst, shape); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", dst); err != nil {
		return err
	}
	if err := checkElementwiseAliasing(opName, dst, src); err != nil {
		return err
	}
	if !triuDTypeMap.Supports(src.DType()) {
		return errorf(ErrUnsupportedDType, "%s: dtype %s", opName, src.DType())
	}
	return nil
}

func (e *Executor) execTriu(opName string, src, dst *tensors.Tensor, diagonal int) error {
	return catch(opName, func() error {
		fn := triuDTypeMap.MustGet(src.DType()).(func(e *Executor, opName string, src, dst matrices, diagonal int))
		fn(e, opName, matricesOf(src), matricesOf(dst), diagonal)
		return nil
	})
}

func execTriuGeneric[T dtypes.Supported](e *Executor, opName string, src, dst matrices, diagonal int) {
	srcFlat, dstFlat := tensors.Flat[T](src.t), tensors.Flat[T](dst.t)
	var zero T
	e.parallelFor(opName, len(dst.offsets), dst.rows*dst.cols, func(start, end int) {
		for m := start; m < end; m++ {
			for row := range dst.rows {
				for col := range dst.cols {
					if col-row >= diagonal {
						dstFlat[dst.at(m, row, col)] = srcFlat[src.at(m, row, col)]
					} else {
						dstFlat[dst.at(m, row, col)] = zero
					}
				}
			}
		}
	})
}

// Trace sums the main diagonal of each inner matrix of input. See Executor.Trace.
func Trace(input, output *tensors.Tensor) error {
	return Default().Trace(input, output)
}

// Trace sums the main diagonal of each inner matrix (last two axes) of input, over min(rows, cols)
// elements. output has input's shape without the last two axes, and the same dtype.
func (e *Executor) Trace(input, output *tensors.Tensor) error {
	const opName = "Trace"
	if err := checkNotNil(opName, []string{"input", "output"}, input, output); err != nil {
		return err
	}
	if err := checkMinRank(opName, "input", input, 2); err != nil {
		return err
	}
	outputShape := shapes.Make(input.DType(), input.Shape().Dimensions[:input.Rank()-2]...)
	if err := checkShape(opName, "output", output, outputShape); err != nil {
		return err
	}
	if err := checkNoOverlap(opName, output, input); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}
	fn, err := traceDTypeMap.Get(input.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, input, output *tensors.Tensor))(e, input, output)
		return nil
	})
}

func execTraceGeneric[T dtypes.Number](e *Executor, input, output *tensors.Tensor) {
	m := matricesOf(input)
	inFlat, outFlat := tensors.Flat[T](input), tensors.Flat[T](output)
	outPositions := make([]int, output.Size())
	for idx, pos := range output.Iter() {
		outPositions[idx] = pos
	}
	diagLen := min(m.rows, m.cols)
	e.parallelFor("Trace", len(m.offsets), diagLen, func(start, end int) {
		for matrix := start; matrix < end; matrix++ {
			var sum T
			for i := range diagLen {
				sum += inFlat[m.at(matrix, i, i)]
			}
			outFlat[outPositions[matrix]] = sum
		}
	})
}

func execTraceHalf(e *Executor, input, output *tensors.Tensor) {
	tmp := float32Like(output)
	execTraceGeneric[float32](e, upcastHalf(input), tmp)
	storeHalf(tmp, output)
}

// Eye fills output with identity matrices. See Executor.Eye.
func Eye(output *tensors.Tensor) error {
	return Default().Eye(output)
}

// Eye fills each inner matrix (last two axes) of output with the identity: ones in the main diagonal
// and zeros elsewhere. Non-square matrices get ones in positions (i, i) for i < min(rows, cols).
// A rank 1 output is taken as a single row.
func (e *Executor) Eye(output *tensors.Tensor) error {
	const opName = "Eye"
	if err := checkNotNil(opName, []string{"output"}, output); err != nil {
		return err
	}
	if err := checkMinRank(opName, "output", output, 1); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}
	fn, err := eyeDTypeMap.Get(output.DType())
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		fn.(func(e *Executor, output *tensors.Tensor))(e, output)
		return nil
	})
}

func execEyeGeneric[T dtypes.Supported](e *Executor, output *tensors.Tensor) {
	m := matricesOf(output)
	flat := tensors.Flat[T](output)
	var zero T
	one := fromFloat64[T](1)
	e.parallelFor("Eye", len(m.offsets), m.rows*m.cols, func(start, end int) {
		for matrix := start; matrix < end; matrix++ {
			for row := range m.rows {
				for col := range m.cols {
					if row == col {
						flat[m.at(matrix, row, col)] = one
					} else {
						flat[m.at(matrix, row, col)] = zero
					}
				}
			}
		}
	})
}

// InvertPermutation writes to output the inverse of the permutation in input. See Executor.InvertPermutation.
func InvertPermutation(input, output *tensors.Tensor) error {
	return Default().InvertPermutation(input, output)
}

// InvertPermutation writes to output the inverse of the permutation in input: output[input[i]] = i.
//
// input is a rank 1 tensor with a permutation of [0, N), of any integer dtype (or a float dtype holding
// integral values). output is a rank 1 tensor of length N, of any numeric dtype. It returns
// ErrInvalidPermutation if input has values out of range or repeated.
// output can be input itself.
func (e *Executor) InvertPermutation(input, output *tensors.Tensor) error {
	const opName = "InvertPermutation"
	if err := checkNotNil(opName, []string{"input", "output"}, input, output); err != nil {
		return err
	}
	if input.Rank() != 1 {
		return errorf(ErrShapeMismatch, "%s: input must have rank 1, got shape %s", opName, input.Shape())
	}
	if !slices.Equal(output.Shape().Dimensions, input.Shape().Dimensions) {
		return errorf(ErrShapeMismatch, "%s: output has shape %s, expected dimensions %v",
			opName, output.Shape(), input.Shape().Dimensions)
	}
	if err := checkElementwiseAliasing(opName, output, input); err != nil {
		return err
	}
	if err := checkDistinctPositions(opName, "output", output); err != nil {
		return err
	}
	if !storeIntsDTypeMap.Supports(output.DType()) {
		return errorf(ErrUnsupportedDType, "%s: output dtype %s", opName, output.DType())
	}
	perm, err := readIndices(input)
	if err != nil {
		if errors.Is(err, ErrUnsupportedDType) {
			return err
		}
		return errorf(ErrInvalidPermutation, "%s: %v", opName, err)
	}
	inverse, err := invertPermutation(perm)
	if err != nil {
		return err
	}
	return catch(opName, func() error {
		storeInts(inverse, output)
		return nil
	})
}

// invertPermutation returns the inverse of perm, or an ErrInvalidPermutation if it is not a permutation.
func invertPermutation(perm []int) ([]int, error) {
	n := len(perm)
	inverse := make([]int, n)
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n {
			return nil, errorf(ErrInvalidPermutation, "value %d at position %d is out of range [0, %d)", p, i, n)
		}
		if seen[p] {
			return nil, errorf(ErrInvalidPermutation, "value %d is repeated", p)
		}
		seen[p] = true
		inverse[p] = i
	}
	return inverse, nil
}
