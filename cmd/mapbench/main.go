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

// Command mapbench measures the registered hash-map variants on a workload
// across a range of input sizes and reports per-size timings plus a fitted
// complexity estimate per variant.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mapbench/mapbench"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		workload  string
		implNames []string
		sizes     []int
		benchtime time.Duration
		jsonPath  string
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:           "mapbench",
		Short:         "Benchmark hash-map implementations on histogram and lookup workloads",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := mapbench.ParseWorkload(workload)
			if err != nil {
				return err
			}
			impls, err := resolveImpls(implNames)
			if err != nil {
				return err
			}
			if err := validateSizes(sizes); err != nil {
				return err
			}

			logLevel := slog.LevelInfo
			if quiet {
				logLevel = slog.LevelWarn
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

			opts := []mapbench.Option{
				mapbench.WithImpls(impls...),
				mapbench.WithBenchtime(benchtime),
				mapbench.WithLogger(log),
			}
			if len(sizes) > 0 {
				opts = append(opts, mapbench.WithSizes(sizes...))
			}
			rep := mapbench.NewRunner(w, opts...).Run()

			if err := rep.WriteTable(cmd.OutOrStdout()); err != nil {
				return err
			}
			if jsonPath != "" {
				f, err := os.Create(jsonPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := rep.WriteJSON(f); err != nil {
					return err
				}
				log.Info("wrote report", "path", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workload, "workload", "histogram", "workload to measure: histogram or lookup")
	cmd.Flags().StringSliceVar(&implNames, "impl", nil, "map variants to measure (default all)")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "input sizes to measure at (default per workload)")
	cmd.Flags().DurationVar(&benchtime, "benchtime", time.Second, "measurement time per (variant, size) combination")
	cmd.Flags().StringVar(&jsonPath, "json", "", "also write the report as JSON to this file")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress per-measurement progress logging")
	return cmd
}

func validateSizes(sizes []int) error {
	for _, n := range sizes {
		if n <= 0 {
			return fmt.Errorf("invalid size %d: sizes must be positive", n)
		}
	}
	return nil
}

func resolveImpls(names []string) ([]mapbench.Impl, error) {
	if len(names) == 0 {
		return mapbench.Impls(), nil
	}
	impls := make([]mapbench.Impl, 0, len(names))
	for _, name := range names {
		impl, ok := mapbench.ImplByName(name)
		if !ok {
			known := make([]string, 0, len(mapbench.Impls()))
			for _, i := range mapbench.Impls() {
				known = append(known, i.Name)
			}
			return nil, fmt.Errorf("unknown impl %q (known: %s)", name, strings.Join(known, ", "))
		}
		impls = append(impls, impl)
	}
	return impls, nil
}
