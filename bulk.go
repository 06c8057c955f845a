// Copyright 2014 Google Inc.
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

package treemap

import "iter"

// Ranger is anything that can list its entries. *Map is a Ranger.
type Ranger[K any, V any] interface {
	All() iter.Seq2[K, V]
}

// Merge adds every entry of other to t. Where both hold a key, other's
// value wins. Keys only in t keep their value.
//
// Each entry costs one descent of t, and t is not balanced, so the
// worst case is O(other.Len() * t.Len()).
func (t *Map[K, V]) Merge(other Ranger[K, V]) {
	for k, v := range other.All() {
		t.Add(k, v)
	}
}

// RemoveIf removes every entry for which pred returns true and reports
// how many were removed.
//
// pred sees a snapshot taken before anything is removed, so it is never
// called on a map in the middle of being changed.
func (t *Map[K, V]) RemoveIf(pred func(key K, value V) bool) (removed int) {
	for _, e := range t.Entries() {
		if !pred(e.Key, e.Value) {
			continue
		}
		// pred may itself have removed e.Key already.
		if _, err := t.Remove(e.Key); err == nil {
			removed++
		}
	}
	return
}
