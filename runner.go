// Copyright 2026 The Mapbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mapbench

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"
)

// Workload identifies one of the measured access patterns.
type Workload int

const (
	// HistogramWorkload counts occurrences of every input value into a
	// fresh map, then reconstructs the input from the counts.
	HistogramWorkload Workload = iota
	// LookupWorkload probes a pre-populated map with its own keys in a
	// shuffled order, one hit per iteration.
	LookupWorkload
)

func (w Workload) String() string {
	switch w {
	case HistogramWorkload:
		return "histogram"
	case LookupWorkload:
		return "lookup"
	default:
		return fmt.Sprintf("Workload(%d)", int(w))
	}
}

// ParseWorkload maps a workload name to its Workload.
func ParseWorkload(s string) (Workload, error) {
	switch s {
	case "histogram":
		return HistogramWorkload, nil
	case "lookup":
		return LookupWorkload, nil
	default:
		return 0, fmt.Errorf("unknown workload %q", s)
	}
}

// defaultSizes returns the size classes a workload is measured at when the
// caller does not choose its own. The histogram workload tops out earlier
// because each iteration touches every element.
func defaultSizes(w Workload) []int {
	if w == HistogramWorkload {
		return []int{256, 2048, 16384, 1 << 16}
	}
	return []int{256, 2048, 16384, 131072, 1 << 20}
}

// bench returns the benchmark body for one (variant, size) combination.
// Setup costs stay outside the timed region: the lookup fixture is built
// before the timer starts, and the histogram workload stops the timer while
// it copies the base input for each iteration. Map construction is part of
// the histogram's timed work, matching its per-trial container lifecycle.
func (w Workload) bench(impl Impl, n int) func(b *testing.B) {
	if w == HistogramWorkload {
		return func(b *testing.B) {
			data := Random(n, DataSeed, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				cp := slices.Clone(data)
				b.StartTimer()
				HistogramSort(impl.New(0), cp)
			}
		}
	}
	return func(b *testing.B) {
		data := Random(n, DataSeed, 2*n)
		f := NewLookupFixture(impl.New(n), data, Shuffle(data, ShuffleSeed))
		b.ResetTimer()
		var ok bool
		for i := 0; i < b.N; i++ {
			_, ok = f.Next()
		}
		b.StopTimer()
		fmt.Fprint(io.Discard, ok)
	}
}

// Runner drives a workload across map variants and size classes using
// testing.Benchmark, then fits a complexity estimate per variant.
type Runner struct {
	workload  Workload
	impls     []Impl
	sizes     []int
	benchtime time.Duration
	log       *slog.Logger
}

// NewRunner returns a Runner measuring w with all registered variants at the
// default size classes, configurable through options.
func NewRunner(w Workload, options ...Option) *Runner {
	r := &Runner{
		workload: w,
		impls:    Impls(),
		sizes:    defaultSizes(w),
		log:      slog.Default(),
	}
	for _, op := range options {
		op.apply(r)
	}
	return r
}

// Run executes every (variant, size) combination and returns the report.
func (r *Runner) Run() *Report {
	if r.benchtime > 0 {
		restore := setBenchtime(r.benchtime)
		defer restore()
	}
	rep := &Report{Workload: r.workload.String()}
	for _, impl := range r.impls {
		points := make([]Measurement, 0, len(r.sizes))
		for _, n := range r.sizes {
			res := testing.Benchmark(r.workload.bench(impl, n))
			m := Measurement{
				Impl:       impl.Name,
				Workload:   r.workload.String(),
				N:          n,
				NsPerOp:    float64(res.T.Nanoseconds()) / float64(res.N),
				Iterations: res.N,
			}
			r.log.Info("measured",
				"workload", m.Workload, "impl", m.Impl,
				"n", m.N, "ns_per_op", m.NsPerOp, "iterations", m.Iterations)
			points = append(points, m)
		}
		rep.Measurements = append(rep.Measurements, points...)
		rep.Fits = append(rep.Fits, Estimate(impl.Name, points))
	}
	return rep
}

// setBenchtime adjusts the iteration budget testing.Benchmark uses and
// returns a function restoring the previous value. The testing flags are
// process global; inside a test binary a leaked value would carry over into
// any benchmarks run after the tests. Outside a test binary the flags are
// not registered yet; testing.Init registers them so the value can be set.
func setBenchtime(d time.Duration) func() {
	if flag.Lookup("test.benchtime") == nil {
		testing.Init()
	}
	prev := flag.Lookup("test.benchtime").Value.String()
	_ = flag.Set("test.benchtime", d.String())
	return func() { _ = flag.Set("test.benchtime", prev) }
}
