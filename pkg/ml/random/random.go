// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package random defines the random-bit-stream capability consumed by the randomized transforms
// (see transforms.RandomShuffle), and a default counter-based implementation (Philox).
//
// The package never owns the stream used by an operation: seeding and lifetime are the caller's.
// A stream is not safe for concurrent use, wrap it with NewLocked if it is shared among goroutines.
package random

import (
	"sync"

	"github.com/gomlx/exceptions"
)

// Interface of a random-bit-stream: the only capability the transforms need.
//
// *rand.Rand from math/rand/v2 implements it, as does Philox.
type Interface interface {
	// IntN returns a random integer uniformly from 0 to n-1. It panics if n <= 0.
	IntN(n int) int
}

// Locked serializes access to a random stream, so it can be shared among goroutines.
//
// Notice that sharing a stream among concurrent users makes the sequence each of them observes
// non-deterministic.
type Locked struct {
	mu sync.Mutex
	r  Interface
}

var _ Interface = &Locked{}

// NewLocked wraps r with a mutex.
func NewLocked(r Interface) *Locked {
	if r == nil {
		exceptions.Panicf("random.NewLocked given a nil stream")
	}
	return &Locked{r: r}
}

// IntN implements Interface.
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Permutation returns a random permutation of [0, n), drawn with a Fisher-Yates pass: for
// i = n-1 down to 1, position i is swapped with position r.IntN(i+1).
//
// It consumes exactly n-1 values from the stream (none for n <= 1), in that order. Any in-place
// shuffle performing the same swaps in the same order ends up with the same arrangement.
func Permutation(r Interface, n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
