// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Kinds of errors returned by the transforms. Returned errors wrap one of them, with a stack
// trace and a description of the violated constraint.
var (
	// ErrShapeMismatch is returned when operand shapes (or dtypes) are incompatible for the operation.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidIndex is returned when an index value is outside the valid range.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidPermutation is returned when a permutation is not a bijection over [0, N).
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrInvalidAxis is returned for an axis outside [-rank, rank), or for repeated axes.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrDegenerateInput is returned for an empty list of inputs, or an empty tensor where a non-empty one
	// is required.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrUnsupportedDType is returned when an operation doesn't implement the dtype of its operands.
	ErrUnsupportedDType = errors.New("unsupported dtype")

	// ErrInvalidArgument is returned for invalid scalar arguments (modes, thresholds, argument lists)
	// and for tensors sharing storage where the operation doesn't allow it.
	ErrInvalidArgument = errors.New("invalid argument")
)

var errorKinds = []error{
	ErrShapeMismatch, ErrInvalidIndex, ErrInvalidPermutation, ErrInvalidAxis, ErrDegenerateInput,
	ErrUnsupportedDType, ErrInvalidArgument,
}

// KindOf returns which of the error kinds err wraps, or nil if none.
func KindOf(err error) error {
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// errorf creates an error of the given kind.
func errorf(kind error, format string, args ...any) error {
	return errors.Wrapf(kind, format, args...)
}

// catch runs fn and converts any panic carrying an error (including runtime errors) into a returned error,
// annotated with the operation name.
func catch(opName string, fn func() error) error {
	var err error
	if panicErr := exceptions.TryCatch[error](func() { err = fn() }); panicErr != nil {
		return errors.WithMessage(panicErr, opName)
	}
	return err
}
