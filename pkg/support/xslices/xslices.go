// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provide missing functionality to the slices package.
package xslices

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// At takes an element at the given `index`, where `index` can be negative, in which case it takes from the end
// of the slice.
func At[T any](slice []T, index int) T {
	if index < 0 {
		index = len(slice) + index
	}
	return slice[index]
}

// Last returns the last element of a slice.
func Last[T any](slice []T) T {
	return At(slice, -1)
}

// Copy creates a new (shallow) copy of T. A short cut to a call to `make` and then `copy`.
func Copy[T any](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}
	slice2 := make([]T, len(slice))
	copy(slice2, slice)
	return slice2
}

// FillSlice with fill the slice with the given value.
func FillSlice[T any](slice []T, value T) {
	if len(slice) == 0 {
		return
	}
	slice[0] = value
	filled := 1
	for ; filled < len(slice); filled *= 2 {
		copy(slice[filled:], slice[:filled])
	}
}

// Iota returns a slice of incremental values, starting with start and of length len.
// Eg: Iota(3.0, 2) -> []float64{3.0, 4.0}
func Iota[T constraints.Integer | constraints.Float](start T, len int) (slice []T) {
	slice = make([]T, len)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// Product returns the product of all values of the slice, 1 for an empty slice.
func Product[T constraints.Integer | constraints.Float](slice []T) T {
	p := T(1)
	for _, v := range slice {
		p *= v
	}
	return p
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// SlicesInDelta checks whether multidimensional slices s0 and s1 have the same shape and types,
// and that each of their values are within the given delta. Works with any numeric
// types.
//
// If delta <= 0, it checks for equality. Two NaNs are considered equal.
func SlicesInDelta(s0, s1 any, delta float64) bool {
	cmpFn := func(e0, e1 any) bool {
		if reflect.TypeOf(e0) != reflect.TypeOf(e1) {
			return false
		}
		if reflect.DeepEqual(e0, e1) {
			return true
		}
		e0v := reflect.ValueOf(e0)
		e1v := reflect.ValueOf(e1)
		deltaType := reflect.TypeOf(delta)
		if !e0v.CanConvert(deltaType) {
			// Not numeric, cannot check for delta.
			return false
		}
		e0Float := e0v.Convert(deltaType).Float()
		e1Float := e1v.Convert(deltaType).Float()
		if math.IsNaN(e0Float) && math.IsNaN(e1Float) {
			return true
		}
		if delta <= 0 {
			return false
		}
		return math.Abs(e0Float-e1Float) <= delta
	}
	return DeepSliceCmp(s0, s1, cmpFn)
}

// DeepSliceCmp returns false if the slices given are of different shapes, or if the given cmpFn on each element
// returns false.
func DeepSliceCmp(s0, s1 any, cmpFn func(e0, e1 any) bool) bool {
	return recursiveDeepSliceCmp(reflect.ValueOf(s0), reflect.ValueOf(s1), cmpFn)
}

func recursiveDeepSliceCmp(s0, s1 reflect.Value, cmpFn func(e0, e1 any) bool) bool {
	if !s0.IsValid() || !s1.IsValid() {
		return false
	}
	if s0.Type().Kind() != s1.Type().Kind() {
		return false
	}
	if s0.Type().Kind() != reflect.Slice {
		return cmpFn(s0.Interface(), s1.Interface())
	}
	if s0.Len() != s1.Len() {
		return false
	}
	for ii := 0; ii < s0.Len(); ii++ {
		if !recursiveDeepSliceCmp(s0.Index(ii), s1.Index(ii), cmpFn) {
			return false
		}
	}
	return true
}
