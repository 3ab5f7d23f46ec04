// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"math"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
)

var (
	// readIndicesDTypeMap: func(t *tensors.Tensor) ([]int, error)
	readIndicesDTypeMap = NewDTypeMap("ReadIndices")

	// storeIntsDTypeMap: func(values []int, output *tensors.Tensor)
	storeIntsDTypeMap = NewDTypeMap("StoreInts")
)

// readIndices returns the values of an index tensor as ints, in logical order.
// Any integer dtype is accepted, as well as float dtypes holding integral values.
func readIndices(t *tensors.Tensor) ([]int, error) {
	if t == nil {
		return nil, nil
	}
	fn, err := readIndicesDTypeMap.Get(t.DType())
	if err != nil {
		return nil, err
	}
	return fn.(func(t *tensors.Tensor) ([]int, error))(t)
}

func readIntIndicesGeneric[T dtypes.Integer](t *tensors.Tensor) ([]int, error) {
	flat := tensors.Flat[T](t)
	out := make([]int, t.Size())
	for idx, pos := range t.Iter() {
		v := flat[pos]
		if v > 0 && uint64(v) > math.MaxInt {
			return nil, errorf(ErrInvalidIndex, "index value %d at position %d doesn't fit an int", v, idx)
		}
		out[idx] = int(v)
	}
	return out, nil
}

func readFloatIndicesGeneric[T dtypes.GoFloat](t *tensors.Tensor) ([]int, error) {
	flat := tensors.Flat[T](t)
	out := make([]int, t.Size())
	for idx, pos := range t.Iter() {
		v := float64(flat[pos])
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return nil, errorf(ErrInvalidIndex, "index value %g at position %d is not an integer", v, idx)
		}
		out[idx] = int(v)
	}
	return out, nil
}

func readHalfIndices(t *tensors.Tensor) ([]int, error) {
	return readFloatIndicesGeneric[float32](upcastHalf(t))
}

// storeInts writes values, in logical order, to output, which can be of any numeric dtype.
func storeInts(values []int, output *tensors.Tensor) {
	storeIntsDTypeMap.MustGet(output.DType()).(func(values []int, output *tensors.Tensor))(values, output)
}

func storeIntsGeneric[T dtypes.Number](values []int, output *tensors.Tensor) {
	flat := tensors.Flat[T](output)
	for idx, pos := range output.Iter() {
		flat[pos] = T(values[idx])
	}
}

func storeIntsHalf(values []int, output *tensors.Tensor) {
	tmp := float32Like(output)
	storeIntsGeneric[float32](values, tmp)
	storeHalf(tmp, output)
}

// checkIndexRange returns an ErrInvalidIndex if any of the indices is outside [0, dim).
func checkIndexRange(opName string, indices []int, dim int) error {
	for i, idx := range indices {
		if idx < 0 || idx >= dim {
			return errorf(ErrInvalidIndex, "%s: index #%d is %d, out of range [0, %d)", opName, i, idx, dim)
		}
	}
	return nil
}
