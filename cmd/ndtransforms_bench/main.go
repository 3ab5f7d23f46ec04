// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// ndtransforms_bench runs each of the transforms on random tensors, and reports their timings.
//
// Example:
//
//	ndtransforms_bench -rows=4096 -cols=512 -dtype=float32 -config="parallelism=8,min_chunk=4096"
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes"
	"github.com/gomlx/ndtransforms/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/ndtransforms/pkg/core/shapes"
	"github.com/gomlx/ndtransforms/pkg/core/tensors"
	"github.com/gomlx/ndtransforms/pkg/ml/random"
	"github.com/gomlx/ndtransforms/pkg/transforms"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

var (
	flagRows       = flag.Int("rows", 1024, "Number of rows of the benchmark matrices.")
	flagCols       = flag.Int("cols", 256, "Number of columns of the benchmark matrices.")
	flagDType      = flag.String("dtype", "float32", "Float dtype of the benchmark tensors: float16, bfloat16, float32 or float64.")
	flagIterations = flag.Int("iterations", 20, "Number of times each operation is run.")
	flagConfig     = flag.String("config", "", "Executor configuration, see transforms.ParseConfig. "+
		"If empty, $"+transforms.ConfigEnvVar+" or the default configuration is used.")
	flagSeed = flag.Int64("seed", 42, "Seed of the random stream used to generate the inputs.")
	flagOps  = flag.String("ops", "", "Comma-separated list of operations to run. If empty, all of them are run.")
)

// benchmark is one operation to time, over inputs of the given number of elements.
type benchmark struct {
	name     string
	elements int
	bytes    int
	run      func() error
}

// result of a benchmark.
type result struct {
	benchmark
	total time.Duration
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	dtype, err := parseFloatDType(*flagDType)
	if err != nil {
		klog.Errorf("Invalid -dtype: %v", err)
		os.Exit(1)
	}
	if *flagRows < 2 || *flagCols < 3 || *flagIterations < 1 {
		klog.Errorf("-rows must be >= 2, -cols >= 3 and -iterations >= 1")
		os.Exit(1)
	}
	executor := transforms.Default()
	if *flagConfig != "" {
		executor = must.M1(transforms.New(*flagConfig))
	}
	klog.V(1).Infof("Benchmarking %s[%d, %d] with %s", dtype, *flagRows, *flagCols, executor.Config())

	rng := random.NewPhiloxWithSeed(*flagSeed)
	benchmarks := selectBenchmarks(newBenchmarks(executor, rng, dtype, *flagRows, *flagCols), *flagOps)
	if len(benchmarks) == 0 {
		klog.Errorf("No operations selected by -ops=%q", *flagOps)
		os.Exit(1)
	}
	results := runBenchmarks(benchmarks, *flagIterations)
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s[%s, %s], %s",
		dtype, humanize.Comma(int64(*flagRows)), humanize.Comma(int64(*flagCols)), executor.Config())))
	fmt.Println(report(results, *flagIterations))
}

// parseFloatDType returns the float dtype with the given name, case-insensitive.
func parseFloatDType(name string) (dtypes.DType, error) {
	for _, dtype := range []dtypes.DType{dtypes.Float16, dtypes.BFloat16, dtypes.Float32, dtypes.Float64} {
		if strings.EqualFold(dtype.String(), name) {
			return dtype, nil
		}
	}
	return dtypes.InvalidDType, fmt.Errorf("%q is not one of float16, bfloat16, float32 or float64", name)
}

// randomTensor returns a tensor of the given float dtype with values uniformly drawn from [-1, 1).
func randomTensor(rng *random.Philox, dtype dtypes.DType, dims ...int) *tensors.Tensor {
	t := tensors.FromShape(shapes.Make(dtype, dims...))
	const resolution = 1 << 16
	next := func() float32 { return float32(rng.IntN(2*resolution)-resolution) / resolution }
	switch dtype {
	case dtypes.Float16:
		flat := tensors.Flat[float16.Float16](t)
		for i := range flat {
			flat[i] = float16.Fromfloat32(next())
		}
	case dtypes.BFloat16:
		flat := tensors.Flat[bfloat16.BFloat16](t)
		for i := range flat {
			flat[i] = bfloat16.FromFloat32(next())
		}
	case dtypes.Float32:
		flat := tensors.Flat[float32](t)
		for i := range flat {
			flat[i] = next()
		}
	case dtypes.Float64:
		flat := tensors.Flat[float64](t)
		for i := range flat {
			flat[i] = float64(next())
		}
	}
	return t
}

// randomIndices returns an Int64 tensor of the given dimensions with values drawn from [0, limit).
func randomIndices(rng *random.Philox, limit int, dims ...int) *tensors.Tensor {
	t := tensors.FromShape(shapes.Make(dtypes.Int64, dims...))
	flat := tensors.Flat[int64](t)
	for i := range flat {
		flat[i] = int64(rng.IntN(limit))
	}
	return t
}

// newBenchmarks creates the inputs and outputs of every operation, over [rows, cols] matrices.
func newBenchmarks(e *transforms.Executor, rng *random.Philox, dtype dtypes.DType, rows, cols int) []benchmark {
	matrix := func() *tensors.Tensor { return randomTensor(rng, dtype, rows, cols) }
	like := func(t *tensors.Tensor) *tensors.Tensor { return tensors.FromShape(t.Shape()) }
	x := matrix()
	size := x.Size()
	bytes := int(x.Memory())
	inputs := []*tensors.Tensor{x, matrix(), matrix()}
	rowIndices := randomIndices(rng, rows, rows)
	pairs := randomIndices(rng, min(rows, cols), rows, 2)
	scatterIndices := make([]int, rows)
	for i := range scatterIndices {
		scatterIndices[i] = rng.IntN(rows)
	}
	perm := tensors.FromShape(shapes.Make(dtypes.Int64, rows))
	for i, p := range random.Permutation(rng, rows) {
		tensors.Flat[int64](perm)[i] = int64(p)
	}
	paddings := tensors.FromValue([][]int64{{1, 1}, {2, 2}})
	padded := tensors.FromShape(shapes.Make(dtype, rows+2, cols+4))
	operand := matrix()
	tiled := randomTensor(rng, dtype, 2*rows, cols)

	return []benchmark{
		{"Triu", size, bytes, func() error { return e.Triu(x, like(x), 1) }},
		{"TriuBP", size, bytes, func() error { return e.TriuBP(x, inputs[1], like(x), 1) }},
		{"Trace", size, bytes, func() error { return e.Trace(x, tensors.FromShape(shapes.Make(dtype))) }},
		{"Eye", size, bytes, func() error { return e.Eye(like(x)) }},
		{"InvertPermutation", rows, 8 * rows, func() error { return e.InvertPermutation(perm, like(perm)) }},
		{"Gather", size, bytes, func() error { return e.Gather(x, rowIndices, like(x), 0) }},
		{"GatherND", rows, 2 * 8 * rows, func() error {
			return e.GatherND(x, pairs, tensors.FromShape(shapes.Make(dtype, rows)))
		}},
		{"ScatterAdd", size, bytes, func() error {
			return e.ScatterUpdate(operand, x, transforms.ScatterAdd, []int{1}, scatterIndices)
		}},
		{"ScatterAssign", size, bytes, func() error {
			return e.ScatterUpdate(operand, x, transforms.ScatterAssign, []int{1}, scatterIndices)
		}},
		{"MergeAdd", 3 * size, 3 * bytes, func() error { return e.MergeAdd(inputs, like(x)) }},
		{"MergeAvg", 3 * size, 3 * bytes, func() error { return e.MergeAvg(inputs, like(x)) }},
		{"MergeMax", 3 * size, 3 * bytes, func() error { return e.MergeMax(inputs, like(x)) }},
		{"MergeMaxIndex", 3 * size, 3 * bytes, func() error {
			return e.MergeMaxIndex(inputs, tensors.FromShape(shapes.Make(dtypes.Int32, rows, cols)))
		}},
		{"Pad(Reflect)", padded.Size(), int(padded.Memory()), func() error {
			return e.Pad(transforms.PadReflect, x, paddings, padded, 0)
		}},
		{"Pad(Constant)", padded.Size(), int(padded.Memory()), func() error {
			return e.Pad(transforms.PadConstant, x, paddings, padded, 0)
		}},
		{"MirrorPad(Symmetric)", padded.Size(), int(padded.Memory()), func() error {
			return e.MirrorPad(x, paddings, padded, transforms.PadSymmetric)
		}},
		{"RandomShuffle", size, bytes, func() error { return e.RandomShuffle(x, like(x), rng, false) }},
		{"ClipByNorm", size, bytes, func() error { return e.ClipByNorm(x, like(x), []int{1}, 1, false) }},
		{"ClipByAveraged", size, bytes, func() error { return e.ClipByAveraged(x, like(x), []int{1}, 0.01, false) }},
		{"ClipByNormBP", size, bytes, func() error { return e.ClipByNormBP(x, inputs[1], like(x), []int{1}, 1) }},
		{"Concat", 2 * size, 2 * bytes, func() error {
			return e.Concat(inputs[:2], tensors.FromShape(shapes.Make(dtype, 2*rows, cols)), 0)
		}},
		{"TileBP", 2 * size, 2 * bytes, func() error { return e.TileBP(tiled, like(x), []int{2, 1}) }},
	}
}

// selectBenchmarks filters the benchmarks by the comma-separated list of names, if not empty.
func selectBenchmarks(benchmarks []benchmark, names string) []benchmark {
	if names == "" {
		return benchmarks
	}
	selected := make(map[string]bool)
	for _, name := range strings.Split(names, ",") {
		selected[strings.ToLower(strings.TrimSpace(name))] = true
	}
	var filtered []benchmark
	for _, b := range benchmarks {
		if selected[strings.ToLower(b.name)] {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// runBenchmarks runs each benchmark once to warm up, and then times the given number of iterations.
func runBenchmarks(benchmarks []benchmark, iterations int) []result {
	bar := progressbar.NewOptions(len(benchmarks)*iterations,
		progressbar.OptionSetDescription("Benchmarking"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	results := make([]result, 0, len(benchmarks))
	for _, b := range benchmarks {
		bar.Describe(fmt.Sprintf("%-22s", b.name))
		must.M(b.run())
		start := time.Now()
		for range iterations {
			must.M(b.run())
			must.M(bar.Add(1))
		}
		results = append(results, result{benchmark: b, total: time.Since(start)})
	}
	must.M(bar.Finish())
	return results
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 0, 4)
)

// report renders the results as a table.
func report(results []result, iterations int) string {
	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			switch {
			case row == lgtable.HeaderRow:
				return headerRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			if col == 0 {
				return s.Align(lipgloss.Left)
			}
			return s.Align(lipgloss.Right)
		})
	table.Headers("Operation", "Elements", "Memory", "Time/op", "Elements/s")
	for _, r := range results {
		perOp := r.total / time.Duration(iterations)
		throughput := float64(r.elements) / max(perOp.Seconds(), 1e-9)
		table.Row(
			r.name,
			humanize.Comma(int64(r.elements)),
			humanize.Bytes(uint64(r.bytes)),
			perOp.String(),
			humanize.SIWithDigits(throughput, 1, ""),
		)
	}
	return table.Render()
}
