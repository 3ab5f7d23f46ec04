// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"os"
	"sync"

	"github.com/gomlx/ndtransforms/internal/workerspool"
	"k8s.io/klog/v2"
)

// Executor runs the transforms with a given configuration.
//
// It holds no state across calls other than its workers pool, and it is safe for concurrent use.
type Executor struct {
	config  Config
	workers *workerspool.Pool
}

// New creates an Executor from a configuration string, see ParseConfig for the format.
func New(config string) (*Executor, error) {
	c, err := ParseConfig(config)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(c), nil
}

// MustNew is like New, but panics on error.
func MustNew(config string) *Executor {
	e, err := New(config)
	if err != nil {
		panic(err)
	}
	return e
}

// NewWithConfig creates an Executor with the given configuration.
func NewWithConfig(config Config) *Executor {
	if config.MinChunkSize < 1 {
		config.MinChunkSize = 1
	}
	e := &Executor{
		config:  config,
		workers: workerspool.NewWithParallelism(config.MaxParallelism),
	}
	klog.V(1).Infof("transforms: new executor with %s", config)
	return e
}

// Config returns the executor's configuration.
func (e *Executor) Config() Config { return e.config }

var (
	muDefault       sync.Mutex
	defaultExecutor *Executor
)

// Default returns the executor used by the package functions. It is created on first use, configured
// from the environment variable NDTRANSFORMS_CONFIG (see ParseConfig).
//
// If the environment variable holds an invalid configuration, the error is logged and DefaultConfig is used.
func Default() *Executor {
	muDefault.Lock()
	defer muDefault.Unlock()
	if defaultExecutor == nil {
		config := os.Getenv(ConfigEnvVar)
		e, err := New(config)
		if err != nil {
			klog.Errorf("transforms: invalid %s=%q, using the default configuration: %+v", ConfigEnvVar, config, err)
			e = NewWithConfig(DefaultConfig())
		}
		defaultExecutor = e
	}
	return defaultExecutor
}

// SetDefault replaces the executor used by the package functions.
func SetDefault(e *Executor) {
	muDefault.Lock()
	defer muDefault.Unlock()
	defaultExecutor = e
}

// parallelFor runs fn over chunks of [0, numItems), where each item involves about itemSize elements,
// so that each chunk has at least Config.MinChunkSize elements.
// Each call to fn must write to a disjoint region of the output.
func (e *Executor) parallelFor(opName string, numItems, itemSize int, fn func(start, end int)) {
	minItems := max(1, e.config.MinChunkSize/max(itemSize, 1))
	if klog.V(2).Enabled() {
		klog.Infof("transforms.%s: %d items of %d elements, split in %d chunks",
			opName, numItems, itemSize, e.workers.NumChunks(numItems, minItems))
	}
	e.workers.ParallelFor(numItems, minItems, fn)
}
