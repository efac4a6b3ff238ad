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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupFixtureAlwaysHits(t *testing.T) {
	for _, impl := range Impls() {
		t.Run(impl.Name, func(t *testing.T) {
			for _, n := range []int{1, 2, 100, 256} {
				data := Random(n, DataSeed, 2*n)
				probe := Shuffle(data, ShuffleSeed)
				f := NewLookupFixture(impl.New(n), data, probe)
				// Three full cyclic passes: wrapping must not
				// change which keys are probed.
				for i := 0; i < 3*n; i++ {
					v, ok := f.Next()
					require.True(t, ok)
					// Insertion is key=key, so the answer
					// is the probed key itself.
					require.Equal(t, probe[i%n], v)
				}
			}
		})
	}
}

// recordingMap wraps another Map and records the keys probed through Get.
type recordingMap struct {
	Map[int, int]
	gets []int
}

func (r *recordingMap) Get(key int) (int, bool) {
	r.gets = append(r.gets, key)
	return r.Map.Get(key)
}

func TestLookupFixtureCursorWraps(t *testing.T) {
	rec := &recordingMap{Map: newRuntimeMap(0)}
	f := NewLookupFixture[int](rec, []int{5, 7}, []int{7, 5})
	for i := 0; i < 5; i++ {
		v, ok := f.Next()
		require.True(t, ok)
		require.Contains(t, []int{5, 7}, v)
	}
	require.Equal(t, []int{7, 5, 7, 5, 7}, rec.gets)
}

func TestLookupFixtureLastWriteWins(t *testing.T) {
	// Duplicate keys in the data collapse to one entry; probing still
	// hits every time.
	data := []int{4, 4, 9, 4}
	for _, impl := range Impls() {
		m := impl.New(len(data))
		f := NewLookupFixture(m, data, Shuffle(data, ShuffleSeed))
		require.Equal(t, 2, m.Len())
		for i := 0; i < 2*len(data); i++ {
			v, ok := f.Next()
			require.True(t, ok)
			require.Contains(t, data, v)
		}
	}
}
