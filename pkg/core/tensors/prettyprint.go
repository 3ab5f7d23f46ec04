// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tensors

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

var (
	typeFloat16  = reflect.TypeOf(float16.Float16(0))
	typeBFloat16 = reflect.TypeOf(bfloat16.BFloat16(0))
)

// TensorStringDefaultPrecision used by Tensor.String.
const TensorStringDefaultPrecision = 4

// String converts to string, if not too large. It uses t.Summary(precision=4).
func (t *Tensor) String() string {
	return t.Summary(TensorStringDefaultPrecision)
}

// maxFullRow is the largest row (or number of rows) printed in full by Summary.
const maxFullRow = 6

// Summary returns a multi-line summary of the Tensor's content, eliding the middle of large axes.
// Non-contiguous tensors are printed in their logical order.
func (t *Tensor) Summary(precision int) string {
	if t.shape.IsZeroSize() {
		return t.shape.String()
	}

	var buf bytes.Buffer
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&buf, format, args...) }

	wValue := func(v reflect.Value) {
		switch {
		case v.Type() == typeFloat16:
			w("%.*g", precision, v.Interface().(float16.Float16).Float32())
			return
		case v.Type() == typeBFloat16:
			w("%.*g", precision, v.Interface().(bfloat16.BFloat16).Float32())
			return
		}
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			w("%d", v.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			w("%d", v.Uint())
		case reflect.Bool:
			w("%v", v.Bool())
		default:
			w("%.*g", precision, v.Interface())
		}
	}

	// Logical order copy of the values.
	flatV := reflect.ValueOf(t.flat)
	values := reflect.MakeSlice(flatV.Type(), t.Size(), t.Size())
	for idx, pos := range t.Iter() {
		values.Index(idx).Set(flatV.Index(pos))
	}

	dims := t.shape.Dimensions
	for _, dim := range dims {
		w("[%d]", dim)
	}
	w("%s", values.Type().Elem())
	if len(dims) == 0 {
		w("(")
		wValue(values.Index(0))
		w(")")
		return buf.String()
	}

	var printElements func(index, indent int, currentShape []int)
	printElements = func(index, indent int, currentShape []int) {
		if len(currentShape) == 1 {
			w("{")
			for i := range currentShape[0] {
				if currentShape[0] > maxFullRow && i >= 3 && i < currentShape[0]-3 {
					if i == 3 {
						w(", ...")
					}
					continue
				}
				if i > 0 {
					w(", ")
				}
				wValue(values.Index(index + i))
			}
			w("}")
			return
		}

		stride := 1
		for _, dim := range currentShape[1:] {
			stride *= dim
		}
		w("{")
		if indent == -1 {
			if currentShape[0] > 1 || len(currentShape) > 2 {
				w("\n ")
			}
			indent = 1
		}
		indentStr := strings.Repeat(" ", indent)
		for ii := range currentShape[0] {
			if currentShape[0] > maxFullRow && ii >= 3 && ii < currentShape[0]-3 {
				if ii == 3 {
					w(",\n%s...", indentStr)
				}
				continue
			}
			if ii > 0 {
				w(",\n%s", indentStr)
			}
			printElements(index+ii*stride, indent+1, currentShape[1:])
		}
		w("}")
	}
	printElements(0, -1, dims)
	return buf.String()
}
