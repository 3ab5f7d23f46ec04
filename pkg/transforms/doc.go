// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package transforms implements structural and numeric transform primitives over N-dimensional
// tensors with arbitrary layouts (see tensors.Tensor): triangular masking, trace, eye,
// permutation inversion, gather/scatter, merges across tensors, padding, shuffling, clipping by norm,
// concatenation and the gradients of some of them.
//
// Every operation takes its inputs and a pre-allocated output whose shape the caller computed, fills the
// output and returns. Preconditions are checked before anything is written: on error the output is left
// untouched. Errors wrap one of the sentinel kinds (ErrShapeMismatch, ErrInvalidIndex, ...), to be
// tested with errors.Is or KindOf.
//
// Operations are available as methods of an Executor, which controls intra-op parallelism, or as
// package functions that use the Default executor, configured from the NDTRANSFORMS_CONFIG
// environment variable.
//
// Aliasing is explicit: ScatterUpdate and the in-place variants of RandomShuffle, ClipByNorm and
// ClipByAveraged write to a tensor that is also read. Other operations require outputs that don't
// share storage with their inputs, except where noted.
// Any tensor written by an operation must map each element to its own buffer position
// (see tensors.Tensor.HasDistinctPositions), so broadcast views can only be inputs.
//
// Float16 and BFloat16 arithmetic is carried out in float32.
package transforms

//go:generate go run ../../internal/cmd/transforms_dispatcher
//go:generate go tool enumer -type=PadMode -trimprefix=Pad -output=gen_padmode_enumer.go pad.go
//go:generate go tool enumer -type=ScatterOp -trimprefix=Scatter -output=gen_scatterop_enumer.go scatter.go
