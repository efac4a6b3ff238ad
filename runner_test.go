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
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWorkload(t *testing.T) {
	for _, w := range []Workload{HistogramWorkload, LookupWorkload} {
		got, err := ParseWorkload(w.String())
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
	_, err := ParseWorkload("delete")
	require.Error(t, err)
}

func TestDefaultSizes(t *testing.T) {
	for _, w := range []Workload{HistogramWorkload, LookupWorkload} {
		sizes := defaultSizes(w)
		require.NotEmpty(t, sizes)
		for i := 1; i < len(sizes); i++ {
			require.Less(t, sizes[i-1], sizes[i])
		}
	}
	// The lookup workload extends further than the histogram workload.
	require.Greater(t,
		defaultSizes(LookupWorkload)[len(defaultSizes(LookupWorkload))-1],
		defaultSizes(HistogramWorkload)[len(defaultSizes(HistogramWorkload))-1])
}

func TestRunnerRestoresBenchtime(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real measurements")
	}
	f := flag.Lookup("test.benchtime")
	require.NotNil(t, f)
	before := f.Value.String()

	impl, ok := ImplByName("runtimeMap")
	require.True(t, ok)
	NewRunner(LookupWorkload,
		WithImpls(impl),
		WithSizes(64),
		WithBenchtime(time.Millisecond),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))).Run()

	// The testing flags are shared with any benchmarks run after the
	// tests; Run must leave them as it found them.
	require.Equal(t, before, f.Value.String())
}

func TestRunnerSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real measurements")
	}
	impl, ok := ImplByName("runtimeMap")
	require.True(t, ok)

	for _, w := range []Workload{HistogramWorkload, LookupWorkload} {
		r := NewRunner(w,
			WithImpls(impl),
			WithSizes(64, 256),
			WithBenchtime(time.Millisecond),
			WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
		rep := r.Run()

		require.Equal(t, w.String(), rep.Workload)
		require.Len(t, rep.Measurements, 2)
		require.Len(t, rep.Fits, 1)
		for _, m := range rep.Measurements {
			require.Equal(t, "runtimeMap", m.Impl)
			require.Equal(t, w.String(), m.Workload)
			require.Greater(t, m.NsPerOp, 0.0)
			require.Greater(t, m.Iterations, 0)
		}
		require.Equal(t, "runtimeMap", rep.Fits[0].Impl)
		require.NotEmpty(t, rep.Fits[0].Class)
	}
}
