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

// LookupFixture is the random-access workload: a populated map plus a probe
// order over its keys. Construction is the untimed setup; Next is the timed
// step.
type LookupFixture[K comparable] struct {
	m     Map[K, K]
	probe []K
	pos   int
}

// NewLookupFixture populates m with key=key for every value in data
// (last-write-wins on duplicates) and fixes probe as the lookup order.
// probe must be non-empty and contain only values present in data, so that
// every timed lookup hits. Callers pass a shuffled copy of data, which
// satisfies both by construction.
func NewLookupFixture[K comparable](m Map[K, K], data, probe []K) *LookupFixture[K] {
	for _, k := range data {
		m.Put(k, k)
	}
	return &LookupFixture[K]{m: m, probe: probe}
}

// Next looks up the next key in the probe order and reports the map's
// answer. The cursor wraps at the end of the probe order, so runs longer
// than one full pass reuse the same permutation cyclically.
func (f *LookupFixture[K]) Next() (K, bool) {
	k := f.probe[f.pos]
	f.pos++
	if f.pos == len(f.probe) {
		f.pos = 0
	}
	return f.m.Get(k)
}
