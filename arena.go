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

// ref addresses a node slot in the arena. The zero ref is the empty
// subtree: slot 0 is reserved and never holds a node.
type ref int32

const nilRef ref = 0

// node is a single binary search tree node.
//
// parent is a back-reference used for walking upwards during iteration
// and unlinking. Slots are only ever released by the arena, never by
// following parent.
type node[K any, V any] struct {
	key    K
	val    V
	left   ref
	right  ref
	parent ref
}

// arena owns every node of one Map. Released slots go on a free list and
// are handed out again before the slice grows, so the ref of a live node
// never changes.
type arena[K any, V any] struct {
	nodes []node[K, V]
	free  []ref
}

func newArena[K any, V any](capacity int) arena[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return arena[K, V]{nodes: make([]node[K, V], 1, capacity+1)}
}

// at returns the node addressed by r. r must not be nilRef.
func (a *arena[K, V]) at(r ref) *node[K, V] {
	return &a.nodes[r]
}

// newNode takes a slot from the free list, or appends one if the free
// list is empty.
func (a *arena[K, V]) newNode(key K, val V, parent ref) (r ref) {
	index := len(a.free) - 1
	if index < 0 {
		a.nodes = append(a.nodes, node[K, V]{key: key, val: val, parent: parent})
		return ref(len(a.nodes) - 1)
	}
	r = a.free[index]
	a.free = a.free[:index]
	a.nodes[r] = node[K, V]{key: key, val: val, parent: parent}
	return
}

// freeNode puts r back on the free list.
func (a *arena[K, V]) freeNode(r ref) {
	// clear to allow GC
	a.nodes[r] = node[K, V]{}
	a.free = append(a.free, r)
}

// live returns the number of slots currently holding a node.
func (a *arena[K, V]) live() int {
	return len(a.nodes) - 1 - len(a.free)
}

// reset drops every node. The backing arrays are kept for reuse, with
// their contents zeroed so nothing they referenced stays reachable.
func (a *arena[K, V]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = a.free[:0]
}

// clone returns an independent copy. Refs are stable across the copy.
func (a *arena[K, V]) clone() arena[K, V] {
	out := arena[K, V]{
		nodes: make([]node[K, V], len(a.nodes), cap(a.nodes)),
		free:  make([]ref, len(a.free), cap(a.free)),
	}
	copy(out.nodes, a.nodes)
	copy(out.free, a.free)
	return out
}
