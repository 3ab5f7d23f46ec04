// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package transforms

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ConfigEnvVar is the environment variable with the configuration of the Default executor.
// See ParseConfig for its format.
const ConfigEnvVar = "NDTRANSFORMS_CONFIG"

// DefaultMinChunkSize is the default minimum number of elements handled by one parallel task.
const DefaultMinChunkSize = 4096

// Config of an Executor.
type Config struct {
	// MaxParallelism is a soft limit on the number of tasks an operation runs in parallel.
	// 0 disables parallelism (everything runs in the calling goroutine) and -1 makes it unlimited.
	MaxParallelism int

	// MinChunkSize is the minimum number of elements handled by one parallel task.
	MinChunkSize int
}

// DefaultConfig returns runtime.NumCPU() parallelism and DefaultMinChunkSize.
func DefaultConfig() Config {
	return Config{MaxParallelism: runtime.NumCPU(), MinChunkSize: DefaultMinChunkSize}
}

// ParseConfig parses a configuration string: a comma-separated list of options, applied over
// DefaultConfig. Options:
//
//   - "parallelism=<n>": Config.MaxParallelism.
//   - "min_chunk=<n>": Config.MinChunkSize.
//   - "sequential": same as "parallelism=0".
//
// Example: "parallelism=4,min_chunk=1024". An empty string returns DefaultConfig.
func ParseConfig(config string) (Config, error) {
	c := DefaultConfig()
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !hasValue {
			if key == "sequential" {
				c.MaxParallelism = 0
				continue
			}
			return c, errors.Errorf("unknown configuration option %q for transforms", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return c, errors.Wrapf(err, "invalid value for configuration option %q", key)
		}
		switch key {
		case "parallelism":
			if n < -1 {
				return c, errors.Errorf("parallelism must be >= -1, got %d", n)
			}
			c.MaxParallelism = n
		case "min_chunk":
			if n < 1 {
				return c, errors.Errorf("min_chunk must be >= 1, got %d", n)
			}
			c.MinChunkSize = n
		default:
			return c, errors.Errorf("unknown configuration option %q for transforms", key)
		}
	}
	return c, nil
}

// String returns the configuration in the format accepted by ParseConfig.
func (c Config) String() string {
	return "parallelism=" + strconv.Itoa(c.MaxParallelism) + ",min_chunk=" + strconv.Itoa(c.MinChunkSize)
}
