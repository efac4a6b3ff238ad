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
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	json "github.com/json-iterator/go"
)

// Measurement is one timed result: a workload run against one map variant at
// one input size. NsPerOp is the wall time per benchmark iteration;
// Iterations is how many the harness ran to stabilize it.
type Measurement struct {
	Impl       string  `json:"impl"`
	Workload   string  `json:"workload"`
	N          int     `json:"n"`
	NsPerOp    float64 `json:"ns_per_op"`
	Iterations int     `json:"iterations"`
}

// Complexity is a fitted asymptotic estimate for one variant's measurements
// across the size classes.
type Complexity struct {
	Impl        string  `json:"impl"`
	Class       string  `json:"class"`
	Coefficient float64 `json:"coefficient"`
	RMS         float64 `json:"rms"`
}

// Report collects the measurements and fits from one run.
type Report struct {
	Workload     string        `json:"workload"`
	Measurements []Measurement `json:"measurements"`
	Fits         []Complexity  `json:"fits"`
}

var curves = []struct {
	class string
	f     func(n float64) float64
}{
	{"O(1)", func(float64) float64 { return 1 }},
	{"O(logN)", math.Log2},
	{"O(N)", func(n float64) float64 { return n }},
	{"O(NlogN)", func(n float64) float64 { return n * math.Log2(n) }},
	{"O(N^2)", func(n float64) float64 { return n * n }},
}

// Estimate fits ns/op as a function of N against a small family of growth
// curves (least squares through the origin) and returns the best fit by
// relative RMS residual. With fewer than two points the estimate is
// meaningless and O(1) with zero coefficient is returned.
func Estimate(impl string, points []Measurement) Complexity {
	if len(points) < 2 {
		return Complexity{Impl: impl, Class: "O(1)"}
	}
	var mean float64
	for _, p := range points {
		mean += p.NsPerOp
	}
	mean /= float64(len(points))

	best := Complexity{Impl: impl, RMS: math.Inf(1)}
	for _, c := range curves {
		var sft, sff float64
		for _, p := range points {
			fv := c.f(float64(p.N))
			sft += p.NsPerOp * fv
			sff += fv * fv
		}
		if sff == 0 {
			continue
		}
		coeff := sft / sff
		var sq float64
		for _, p := range points {
			d := p.NsPerOp - coeff*c.f(float64(p.N))
			sq += d * d
		}
		rms := math.Sqrt(sq / float64(len(points)))
		if mean > 0 {
			rms /= mean
		}
		if rms < best.RMS {
			best.Class = c.class
			best.Coefficient = coeff
			best.RMS = rms
		}
	}
	return best
}

// WriteTable writes the report as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "workload=%s\n", r.Workload)
	fmt.Fprintln(tw, "impl\tn\tns/op\titerations")
	for _, m := range r.Measurements {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%d\n", m.Impl, m.N, m.NsPerOp, m.Iterations)
	}
	fmt.Fprintln(tw, "\nimpl\tcomplexity\trms")
	for _, c := range r.Fits {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\n", c.Impl, c.Class, c.RMS)
	}
	return tw.Flush()
}

// WriteJSON writes the report as indented JSON for downstream plotting
// tools.
func (r *Report) WriteJSON(w io.Writer) error {
	buf, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
