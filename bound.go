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

// ceil returns the node with the smallest key >= key (inclusive) or
// > key (!inclusive), or nilRef. One root-to-leaf descent.
func (t *Map[K, V]) ceil(key K, inclusive bool) ref {
	best := nilRef
	cur := t.root
	for cur != nilRef {
		n := t.nodes.at(cur)
		c := t.compare(key, n.key)
		switch {
		case c == 0 && inclusive:
			return cur
		case c < 0:
			best, cur = cur, n.left
		default:
			cur = n.right
		}
	}
	return best
}

// floor returns the node with the largest key <= key (inclusive) or
// < key (!inclusive), or nilRef.
func (t *Map[K, V]) floor(key K, inclusive bool) ref {
	best := nilRef
	cur := t.root
	for cur != nilRef {
		n := t.nodes.at(cur)
		c := t.compare(key, n.key)
		switch {
		case c == 0 && inclusive:
			return cur
		case c > 0:
			best, cur = cur, n.right
		default:
			cur = n.left
		}
	}
	return best
}

// GreaterOrEqual returns the entry with the smallest key that is >= key.
// found is false if every key in the map is smaller.
func (t *Map[K, V]) GreaterOrEqual(key K) (e Entry[K, V], found bool) {
	r := t.ceil(key, true)
	if r == nilRef {
		return
	}
	return t.entry(r), true
}

// LessOrEqual returns the entry with the largest key that is <= key.
// found is false if every key in the map is larger.
func (t *Map[K, V]) LessOrEqual(key K) (e Entry[K, V], found bool) {
	r := t.floor(key, true)
	if r == nilRef {
		return
	}
	return t.entry(r), true
}

// GreaterThan returns the entry with the smallest key strictly above key.
func (t *Map[K, V]) GreaterThan(key K) (e Entry[K, V], found bool) {
	r := t.ceil(key, false)
	if r == nilRef {
		return
	}
	return t.entry(r), true
}

// LessThan returns the entry with the largest key strictly below key.
func (t *Map[K, V]) LessThan(key K) (e Entry[K, V], found bool) {
	r := t.floor(key, false)
	if r == nilRef {
		return
	}
	return t.entry(r), true
}
