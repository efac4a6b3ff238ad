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
	"github.com/alphadose/haxmap"
	"github.com/cockroachdb/swiss"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/tidwall/hashmap"
)

// runtimeMap adapts Go's builtin map, the baseline the other variants are
// measured against.
type runtimeMap struct {
	m map[int]int
}

func newRuntimeMap(capacity int) Map[int, int] {
	return &runtimeMap{m: make(map[int]int, capacity)}
}

func (r *runtimeMap) Put(key, value int) { r.m[key] = value }

func (r *runtimeMap) Get(key int) (int, bool) {
	v, ok := r.m[key]
	return v, ok
}

func (r *runtimeMap) All(yield func(key, value int) bool) {
	for k, v := range r.m {
		if !yield(k, v) {
			return
		}
	}
}

func (r *runtimeMap) Len() int { return len(r.m) }

// The swiss table variant needs no adapter: swiss.Map's method set is the
// capability vocabulary this package uses.
func newSwissMap(capacity int) Map[int, int] {
	return swiss.New[int, int](capacity)
}

// robinHoodMap adapts tidwall/hashmap, an open-addressing map using Robin
// Hood displacement.
type robinHoodMap struct {
	m *hashmap.Map[int, int]
}

func newRobinHoodMap(capacity int) Map[int, int] {
	return &robinHoodMap{m: hashmap.New[int, int](capacity)}
}

func (r *robinHoodMap) Put(key, value int) { r.m.Set(key, value) }

func (r *robinHoodMap) Get(key int) (int, bool) { return r.m.Get(key) }

func (r *robinHoodMap) All(yield func(key, value int) bool) { r.m.Scan(yield) }

func (r *robinHoodMap) Len() int { return r.m.Len() }

// xsyncMap adapts puzpuzpuz/xsync's concurrent map, the parallel flat
// variant. The workloads are single threaded; it is included to measure
// what its synchronization costs under uncontended use.
type xsyncMap struct {
	m *xsync.MapOf[int, int]
}

func newXsyncMap(capacity int) Map[int, int] {
	if capacity > 0 {
		return &xsyncMap{m: xsync.NewMapOf[int, int](xsync.WithPresize(capacity))}
	}
	return &xsyncMap{m: xsync.NewMapOf[int, int]()}
}

func (x *xsyncMap) Put(key, value int) { x.m.Store(key, value) }

func (x *xsyncMap) Get(key int) (int, bool) { return x.m.Load(key) }

func (x *xsyncMap) All(yield func(key, value int) bool) { x.m.Range(yield) }

func (x *xsyncMap) Len() int { return x.m.Size() }

// haxMap adapts alphadose/haxmap, a lock-free map.
type haxMap struct {
	m *haxmap.Map[int, int]
}

func newHaxMap(capacity int) Map[int, int] {
	if capacity > 0 {
		return &haxMap{m: haxmap.New[int, int](uintptr(capacity))}
	}
	return &haxMap{m: haxmap.New[int, int]()}
}

func (h *haxMap) Put(key, value int) { h.m.Set(key, value) }

func (h *haxMap) Get(key int) (int, bool) { return h.m.Get(key) }

func (h *haxMap) All(yield func(key, value int) bool) { h.m.ForEach(yield) }

func (h *haxMap) Len() int { return int(h.m.Len()) }
