// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import "strconv"

// DType is an enum representing the element type of a tensor.
//
// The numeric values follow the XLA/PJRT buffer type numbering, so they can be exchanged with
// GoMLX backends without translation. Only the dtypes the transforms operate on are listed.
type DType int32

const (
	// InvalidDType is the zero value, used for uninitialized shapes.
	InvalidDType DType = 0

	// Bool is a two-state boolean.
	Bool DType = 1

	// Int8 is a signed 8-bit integer.
	Int8 DType = 2

	// Int16 is a signed 16-bit integer.
	Int16 DType = 3

	// Int32 is a signed 32-bit integer.
	Int32 DType = 4

	// Int64 is a signed 64-bit integer.
	Int64 DType = 5

	// Uint8 is an unsigned 8-bit integer.
	Uint8 DType = 6

	// Uint16 is an unsigned 16-bit integer.
	Uint16 DType = 7

	// Uint32 is an unsigned 32-bit integer.
	Uint32 DType = 8

	// Uint64 is an unsigned 64-bit integer.
	Uint64 DType = 9

	// Float16 is the IEEE 754 half-precision float, see github.com/x448/float16.
	Float16 DType = 10

	// Float32 is the IEEE 754 single-precision float.
	Float32 DType = 11

	// Float64 is the IEEE 754 double-precision float.
	Float64 DType = 12

	// BFloat16 is the truncated 16 bit floating-point format: 1 bit for the sign, 8 bits for
	// the exponent and 7 bits for the mantissa.
	BFloat16 DType = 13

	// NumDTypes is one past the largest DType value, and can be used to size lookup tables.
	NumDTypes = 14
)

// Aliases following the XLA C enum names.
const (
	INVALID = InvalidDType
	PRED    = Bool
	S8      = Int8
	S16     = Int16
	S32     = Int32
	S64     = Int64
	U8      = Uint8
	U16     = Uint16
	U32     = Uint32
	U64     = Uint64
	F16     = Float16
	F32     = Float32
	F64     = Float64
	BF16    = BFloat16
)

var dtypeNames = [NumDTypes]string{
	"InvalidDType", "Bool", "Int8", "Int16", "Int32", "Int64",
	"Uint8", "Uint16", "Uint32", "Uint64", "Float16", "Float32", "Float64", "BFloat16",
}

// String implements fmt.Stringer.
func (dtype DType) String() string {
	if dtype < 0 || dtype >= NumDTypes {
		return "DType(" + strconv.Itoa(int(dtype)) + ")"
	}
	return dtypeNames[dtype]
}

// MapOfNames to their dtypes. It includes also aliases to the various dtypes.
// It is also later initialized to include the lower-case version of the names.
var MapOfNames = map[string]DType{
	"InvalidDType": InvalidDType,
	"INVALID":      InvalidDType,
	"Bool":         Bool,
	"PRED":         Bool,
	"Int8":         Int8,
	"S8":           Int8,
	"Int16":        Int16,
	"S16":          Int16,
	"Int32":        Int32,
	"S32":          Int32,
	"Int64":        Int64,
	"S64":          Int64,
	"Uint8":        Uint8,
	"U8":           Uint8,
	"Uint16":       Uint16,
	"U16":          Uint16,
	"Uint32":       Uint32,
	"U32":          Uint32,
	"Uint64":       Uint64,
	"U64":          Uint64,
	"Float16":      Float16,
	"F16":          Float16,
	"Float32":      Float32,
	"F32":          Float32,
	"Float64":      Float64,
	"F64":          Float64,
	"BFloat16":     BFloat16,
	"BF16":         BFloat16,
}
