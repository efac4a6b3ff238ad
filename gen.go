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
	"slices"

	"github.com/zeebo/mwc"
)

// Seeds used by the benchmarks and the runner. The data seed and the shuffle
// seed differ so that the lookup order is decorrelated from the insertion
// order. Generators take seeds as parameters rather than reading globals;
// these are merely the conventional values.
const (
	DataSeed    uint64 = 42
	ShuffleSeed uint64 = 123
)

// Ascending returns the values 0..n-1 in order.
func Ascending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Descending returns the values n-1..0 in order.
func Descending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - 1 - i
	}
	return data
}

// Random returns n values drawn uniformly from [0, max], deterministic in
// (n, seed, max). The histogram workload draws from [0, n] and the lookup
// workload from [0, 2n]; the wider range lowers the key-collision density.
func Random(n int, seed uint64, max int) []int {
	rng := mwc.New(seed, seed)
	data := make([]int, n)
	for i := range data {
		data[i] = int(rng.Uint64n(uint64(max) + 1))
	}
	return data
}

// Shuffle returns a shuffled copy of data, deterministic in (data, seed).
// The input is not modified.
func Shuffle(data []int, seed uint64) []int {
	out := slices.Clone(data)
	rng := mwc.New(seed, seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Uint64n(uint64(i) + 1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
