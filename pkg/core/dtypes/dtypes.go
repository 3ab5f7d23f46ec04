// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes includes the DType enum for the element types supported by the transforms,
// converters to/from Go native types (and reflect.Type) and the constraint interfaces used
// with generics (Supported, Number, GoFloat). Only non-complex, byte-aligned types are included.
package dtypes

import (
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the specifications.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

func init() {
	// Add a mapping to the lower-case version of dtypes.
	keys := slices.Collect(maps.Keys(MapOfNames))
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// FromGenericsType returns the DType enum for the given type that this package knows about.
func FromGenericsType[T Supported]() DType {
	var t T
	switch (any(t)).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case int64:
		return Int64
	case int32:
		return Int32
	case int16:
		return Int16
	case int8:
		return Int8
	case bool:
		return Bool
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	}
	return InvalidDType
}

// FromGoType returns the DType for the given "reflect.Type".
// It returns InvalidDType for unknown types.
func FromGoType(t reflect.Type) DType {
	if t == nil {
		return InvalidDType
	}
	if t == float16Type {
		return Float16
	} else if t == bfloat16Type {
		return BFloat16
	}
	switch t.Kind() {
	case reflect.Int:
		if strconv.IntSize == 64 {
			return Int64
		}
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int32:
		return Int32
	case reflect.Int16:
		return Int16
	case reflect.Int8:
		return Int8

	case reflect.Uint64:
		return Uint64
	case reflect.Uint32:
		return Uint32
	case reflect.Uint16:
		return Uint16
	case reflect.Uint8:
		return Uint8

	case reflect.Bool:
		return Bool

	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return InvalidDType
	}
}

// FromAny introspects the underlying type of any and returns the corresponding DType.
// Non-scalar types, or unsupported types return an InvalidType.
func FromAny(value any) DType {
	return FromGoType(reflect.TypeOf(value))
}

// Size returns the number of bytes for the given DType.
func (dtype DType) Size() int {
	return int(dtype.GoType().Size())
}

// Bits returns the number of bits for the given DType.
func (dtype DType) Bits() int {
	return dtype.Size() * 8
}

// SizeForDimensions returns the size in bytes used for the given dimensions.
//
// It works also for scalar (one element) shapes where the list of dimensions is empty.
func (dtype DType) SizeForDimensions(dimensions ...int) int {
	numElements := 1
	for _, dim := range dimensions {
		if dim < 0 {
			panicf("dim cannot be negative for SizeForDimensions, got %v", dimensions)
		}
		numElements *= dim
	}
	return numElements * dtype.Size()
}

// Pre-generate constant reflect.TypeOf for convenience.
var (
	float32Type  = reflect.TypeOf(float32(0))
	float64Type  = reflect.TypeOf(float64(0))
	float16Type  = reflect.TypeOf(float16.Float16(0))
	bfloat16Type = reflect.TypeOf(bfloat16.BFloat16(0))
)

// GoType returns the Go `reflect.Type` corresponding to the tensor DType.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Int64:
		return reflect.TypeOf(int64(0))
	case Int32:
		return reflect.TypeOf(int32(0))
	case Int16:
		return reflect.TypeOf(int16(0))
	case Int8:
		return reflect.TypeOf(int8(0))

	case Uint64:
		return reflect.TypeOf(uint64(0))
	case Uint32:
		return reflect.TypeOf(uint32(0))
	case Uint16:
		return reflect.TypeOf(uint16(0))
	case Uint8:
		return reflect.TypeOf(uint8(0))

	case Bool:
		return reflect.TypeOf(true)

	case Float16:
		return float16Type
	case BFloat16:
		return bfloat16Type
	case Float32:
		return float32Type
	case Float64:
		return float64Type

	default:
		panicf("unknown dtype %q (%d) in DType.GoType", dtype, dtype)
		panic(nil)
	}
}

// IsFloat returns whether dtype is a supported float.
func (dtype DType) IsFloat() bool {
	return dtype == Float32 || dtype == Float64 || dtype == Float16 || dtype == BFloat16
}

// IsFloat16 returns whether dtype is a supported float with 16 bits: [Float16] or [BFloat16].
func (dtype DType) IsFloat16() bool {
	return dtype == Float16 || dtype == BFloat16
}

// IsInt returns whether dtype is a supported integer type.
func (dtype DType) IsInt() bool {
	return dtype == Int64 || dtype == Int32 || dtype == Int16 || dtype == Int8 ||
		dtype == Uint8 || dtype == Uint16 || dtype == Uint32 || dtype == Uint64
}

// IsUnsigned returns whether dtype is one of the unsigned integer types.
func (dtype DType) IsUnsigned() bool {
	return dtype == Uint8 || dtype == Uint16 || dtype == Uint32 || dtype == Uint64
}

// IsNumber returns whether dtype is an integer or a float.
func (dtype DType) IsNumber() bool {
	return dtype.IsInt() || dtype.IsFloat()
}

// IsSupported returns whether dtype is one of the dtypes listed in this package.
func (dtype DType) IsSupported() bool {
	return dtype > InvalidDType && dtype < NumDTypes
}

// Supported lists the Go types that can back a tensor.
// Used as traits for generics.
//
// Go's `int` type is not included, since it may translate to dtypes Int32 or Int64 depending
// on the platform.
type Supported interface {
	bool | float16.Float16 | bfloat16.BFloat16 |
		float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Number represents the Go native numeric types corresponding to supported DType's.
// Used as traits for generics.
//
// It doesn't include float16.Float16 or bfloat16.BFloat16 because they are not native number types.
type Number interface {
	float32 | float64 | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// GoFloat represent a continuous Go numeric type.
type GoFloat interface {
	float32 | float64
}

// Integer lists the Go integer types corresponding to supported DType's.
// Go's `int` and `uint` are not included, see Supported.
type Integer interface {
	Signed | Unsigned
}

// Signed lists the supported signed integer types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned lists the supported unsigned integer types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}
