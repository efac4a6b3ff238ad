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

// HistogramSort counts the occurrences of each distinct value in data using
// m, then rewrites data in place by expanding each distinct value by its
// count, in m's iteration order. The rewritten slice is returned. The output
// holds the same multiset of values as the input, but it is sorted only if m
// iterates in ascending key order; none of the registered variants
// guarantee that.
//
// m must be empty. Counts are plain ints; overflow is not modeled.
func HistogramSort[K comparable](m Map[K, int], data []K) []K {
	for _, v := range data {
		n, _ := m.Get(v)
		m.Put(v, n+1)
	}
	i := 0
	m.All(func(k K, n int) bool {
		for ; n > 0; n-- {
			data[i] = k
			i++
		}
		return true
	})
	return data
}
