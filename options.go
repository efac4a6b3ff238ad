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
	"log/slog"
	"time"
)

// Option provides an interface to do work on a Runner while it is being
// created.
type Option interface {
	apply(r *Runner)
}

type implsOption struct {
	impls []Impl
}

func (op implsOption) apply(r *Runner) {
	r.impls = op.impls
}

// WithImpls restricts a run to the given map variants.
func WithImpls(impls ...Impl) Option {
	return implsOption{impls}
}

type sizesOption struct {
	sizes []int
}

func (op sizesOption) apply(r *Runner) {
	r.sizes = op.sizes
}

// WithSizes overrides the size classes a run is measured at.
func WithSizes(sizes ...int) Option {
	return sizesOption{sizes}
}

type benchtimeOption struct {
	d time.Duration
}

func (op benchtimeOption) apply(r *Runner) {
	r.benchtime = op.d
}

// WithBenchtime is an option to specify how long each (variant, size)
// combination is measured for. Zero keeps the testing package's default.
func WithBenchtime(d time.Duration) Option {
	return benchtimeOption{d}
}

type loggerOption struct {
	log *slog.Logger
}

func (op loggerOption) apply(r *Runner) {
	r.log = op.log
}

// WithLogger is an option to specify the logger progress is reported to.
func WithLogger(log *slog.Logger) Option {
	return loggerOption{log}
}
