// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
)

// registerPriority of an implementation: a registration only replaces one of lower or equal priority.
type registerPriority int

const (
	// priorityGeneric is used by the generic implementations registered in gen_register_dtypes.go.
	priorityGeneric registerPriority = iota

	// priorityTyped is used by implementations specialized for a dtype, e.g. Float16 and BFloat16.
	priorityTyped
)

// DTypeMap holds one implementation (a function, whose type is fixed per map) for each dtype.
type DTypeMap struct {
	Name       string
	fnMap      [dtypes.NumDTypes]any
	priorities [dtypes.NumDTypes]registerPriority
}

// NewDTypeMap creates a new map of implementations for an operation.
func NewDTypeMap(name string) *DTypeMap {
	return &DTypeMap{Name: name}
}

// Register fn as the implementation for dtype, if there isn't one with a higher priority already.
func (d *DTypeMap) Register(dtype dtypes.DType, priority registerPriority, fn any) {
	if !dtype.IsSupported() {
		panic(errorf(ErrUnsupportedDType, "%s: cannot register dtype %s", d.Name, dtype))
	}
	if d.fnMap[dtype] != nil && d.priorities[dtype] > priority {
		return
	}
	d.fnMap[dtype] = fn
	d.priorities[dtype] = priority
}

// Supports returns whether there is an implementation for dtype.
func (d *DTypeMap) Supports(dtype dtypes.DType) bool {
	return dtype.IsSupported() && d.fnMap[dtype] != nil
}

// Get returns the implementation for dtype, or an ErrUnsupportedDType error.
func (d *DTypeMap) Get(dtype dtypes.DType) (any, error) {
	if !d.Supports(dtype) {
		return nil, errorf(ErrUnsupportedDType, "%s: dtype %s not supported", d.Name, dtype)
	}
	return d.fnMap[dtype], nil
}

// MustGet is like Get, but panics with the error. Used after the dtype has been validated.
func (d *DTypeMap) MustGet(dtype dtypes.DType) any {
	fn, err := d.Get(dtype)
	if err != nil {
		panic(err)
	}
	return fn
}
