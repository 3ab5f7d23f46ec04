// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/x448/float16"
)

// halfFloat are the 16 bits floating point types, whose arithmetic is done in float32.
type halfFloat interface {
	float16.Float16 | bfloat16.BFloat16
}

func halfToFloat32[T halfFloat](v T) float32 {
	switch x := any(v).(type) {
	case float16.Float16:
		return x.Float32()
	case bfloat16.BFloat16:
		return x.Float32()
	}
	return 0
}

func float32ToHalf[T halfFloat](v float32) T {
	var zero T
	switch any(zero).(type) {
	case float16.Float16:
		return any(float16.Fromfloat32(v)).(T)
	case bfloat16.BFloat16:
		return any(bfloat16.FromFloat32(v)).(T)
	}
	return zero
}

// fromFloat64 converts v to any of the supported types. Bool is true for any non-zero value.
func fromFloat64[T dtypes.Supported](v float64) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(v != 0).(T)
	case float16.Float16:
		return any(float16.Fromfloat32(float32(v))).(T)
	case bfloat16.BFloat16:
		return any(bfloat16.FromFloat64(v)).(T)
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case int8:
		return any(int8(v)).(T)
	case int16:
		return any(int16(v)).(T)
	case int32:
		return any(int32(v)).(T)
	case int64:
		return any(int64(v)).(T)
	case uint8:
		return any(uint8(v)).(T)
	case uint16:
		return any(uint16(v)).(T)
	case uint32:
		return any(uint32(v)).(T)
	case uint64:
		return any(uint64(v)).(T)
	}
	return zero
}

// upcastHalfGeneric returns a row-major float32 copy of a half precision tensor.
func upcastHalfGeneric[T halfFloat](t *tensors.Tensor) *tensors.Tensor {
	flat := tensors.Flat[T](t)
	out := make([]float32, t.Size())
	for idx, pos := range t.Iter() {
		out[idx] = halfToFloat32(flat[pos])
	}
	return tensors.FromFlatDataAndDimensions(out, t.Shape().Dimensions...)
}

// storeHalfGeneric converts the row-major float32 tensor src into dst, which can have any layout.
func storeHalfGeneric[T halfFloat](src, dst *tensors.Tensor) {
	srcFlat, dstFlat := tensors.Flat[float32](src), tensors.Flat[T](dst)
	for idx, pos := range dst.Iter() {
		dstFlat[pos] = float32ToHalf[T](srcFlat[idx])
	}
}

// upcastHalf returns a row-major float32 copy of a Float16 or BFloat16 tensor.
func upcastHalf(t *tensors.Tensor) *tensors.Tensor {
	if t.DType() == dtypes.Float16 {
		return upcastHalfGeneric[float16.Float16](t)
	}
	return upcastHalfGeneric[bfloat16.BFloat16](t)
}

// upcastHalfs applies upcastHalf to each tensor.
func upcastHalfs(ts []*tensors.Tensor) []*tensors.Tensor {
	out := make([]*tensors.Tensor, len(ts))
	for i, t := range ts {
		out[i] = upcastHalf(t)
	}
	return out
}

// storeHalf converts the row-major float32 tensor src into the Float16 or BFloat16 tensor dst.
func storeHalf(src, dst *tensors.Tensor) {
	if dst.DType() == dtypes.Float16 {
		storeHalfGeneric[float16.Float16](src, dst)
		return
	}
	storeHalfGeneric[bfloat16.BFloat16](src, dst)
}

// float32Like returns a new row-major float32 tensor with the dimensions of t.
func float32Like(t *tensors.Tensor) *tensors.Tensor {
	return tensors.FromFlatDataAndDimensions(make([]float32, t.Size()), t.Shape().Dimensions...)
}
