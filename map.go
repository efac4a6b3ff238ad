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

// Package mapbench benchmarks hash-map implementations on two workloads: a
// histogram-then-reconstruct sort, and a random-access lookup pattern. The
// workloads are generic over the Map capability below; the maps themselves
// are third-party libraries (plus the builtin map as a baseline), adapted in
// adapters.go.
package mapbench

// Map is the capability the workloads require of a container under test:
// last-write-wins insertion, lookup with a found indication, and iteration
// over the elements. None of the workloads depend on a particular iteration
// order.
type Map[K comparable, V any] interface {
	// Put inserts key=value, overwriting any existing entry for key.
	Put(key K, value V)
	// Get returns the value stored for key and whether it was present.
	Get(key K) (V, bool)
	// All calls yield for each element in the map until yield returns
	// false. The iteration order is implementation defined.
	All(yield func(key K, value V) bool)
	// Len returns the number of elements in the map.
	Len() int
}

// Impl is a named constructor for one map variant under test. The capacity
// hint stands in for reserve: variants that support pre-sizing use it so
// that incidental growth stays out of the timed region when construction is
// declared a setup cost.
type Impl struct {
	Name string
	New  func(capacity int) Map[int, int]
}

// Impls returns the registered map variants, baseline first.
func Impls() []Impl {
	return []Impl{
		{Name: "runtimeMap", New: newRuntimeMap},
		{Name: "swissMap", New: newSwissMap},
		{Name: "robinHoodMap", New: newRobinHoodMap},
		{Name: "xsyncMap", New: newXsyncMap},
		{Name: "haxMap", New: newHaxMap},
	}
}

// ImplByName returns the registered variant with the given name.
func ImplByName(name string) (Impl, bool) {
	for _, impl := range Impls() {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}
