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

// Package treemap implements an in-memory sorted map on a plain binary
// search tree.
//
// Keys are ordered by a comparison function supplied when the Map is
// created, so any key type works, not just the cmp.Ordered ones. Beyond
// the usual get/set/delete the Map answers nearest-key queries
// (GreaterOrEqual, LessOrEqual), walks its entries in key order, merges
// another map into itself and removes entries matching a predicate.
//
// The tree is never rebalanced. Inserting keys in ascending or
// descending order produces a tree whose height equals its length, and
// every lookup on it is linear. None of the operations recurse, so such a
// degenerate tree is slow but can never overflow the stack.
//
// Nodes live in a per-map arena and refer to each other by index. Removed
// slots are reused by later insertions, and Clear keeps the arena's
// capacity, much like a node free list.
//
// A Map does no internal locking. Callers that share one across goroutines
// must synchronize access themselves.
package treemap

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultCapacity is the number of node slots New reserves up front.
	DefaultCapacity = 32
)

// ErrKeyNotFound is returned by Get, Remove, Replace and ReplaceFunc when
// the key is not in the map. The returned error wraps it; test with
// errors.Is.
var ErrKeyNotFound = errors.New("treemap: key not found")

func notFound[K any](key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// CompareFunc returns a negative number when a < b, zero when a == b and
// a positive number when a > b. It must define a total order.
type CompareFunc[K any] func(a, b K) int

// Entry is a key and its value.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v:%v", e.Key, e.Value)
}

// Map is a sorted map from K to V.
//
// Write operations are not safe for concurrent use by multiple
// goroutines. Concurrent reads with no writer are fine.
type Map[K any, V any] struct {
	compare CompareFunc[K]
	root    ref
	length  int
	nodes   arena[K, V]

	// bumped on every insertion or removal of a node, so iterators can
	// tell their position may be gone.
	version int64
}

// New creates an empty Map ordered by compare.
func New[K any, V any](compare CompareFunc[K]) *Map[K, V] {
	return NewWithCapacity[K, V](compare, DefaultCapacity)
}

// NewWithCapacity creates an empty Map with room for capacity entries
// before the arena has to grow.
func NewWithCapacity[K any, V any](compare CompareFunc[K], capacity int) *Map[K, V] {
	if compare == nil {
		panic("treemap: nil compare func")
	}
	return &Map[K, V]{
		compare: compare,
		nodes:   newArena[K, V](capacity),
	}
}

// NewOrdered creates an empty Map ordered by cmp.Compare.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Compare[K])
}

// find returns the node holding key, or nilRef.
func (t *Map[K, V]) find(key K) ref {
	cur := t.root
	for cur != nilRef {
		n := t.nodes.at(cur)
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			cur = n.left
		case c > 0:
			cur = n.right
		default:
			return cur
		}
	}
	return nilRef
}

// minRef returns the leftmost node of the subtree at r.
func (t *Map[K, V]) minRef(r ref) ref {
	if r == nilRef {
		return nilRef
	}
	for t.nodes.at(r).left != nilRef {
		r = t.nodes.at(r).left
	}
	return r
}

// maxRef returns the rightmost node of the subtree at r.
func (t *Map[K, V]) maxRef(r ref) ref {
	if r == nilRef {
		return nilRef
	}
	for t.nodes.at(r).right != nilRef {
		r = t.nodes.at(r).right
	}
	return r
}

func (t *Map[K, V]) entry(r ref) Entry[K, V] {
	n := t.nodes.at(r)
	return Entry[K, V]{Key: n.key, Value: n.val}
}

// Add sets key to value. If key was already present its value is
// overwritten in place and the old value is returned with replaced true.
// The tree shape only changes when key is new.
func (t *Map[K, V]) Add(key K, value V) (prev V, replaced bool) {
	parent := nilRef
	c := 0
	cur := t.root
	for cur != nilRef {
		n := t.nodes.at(cur)
		c = t.compare(key, n.key)
		switch {
		case c < 0:
			parent, cur = cur, n.left
		case c > 0:
			parent, cur = cur, n.right
		default:
			prev, n.val = n.val, value
			return prev, true
		}
	}

	// newNode may grow the arena; no node pointers are held across it.
	r := t.nodes.newNode(key, value, parent)
	switch {
	case parent == nilRef:
		t.root = r
	case c < 0:
		t.nodes.at(parent).left = r
	default:
		t.nodes.at(parent).right = r
	}
	t.length++
	t.version++
	return
}

// AddEntry is Add(e.Key, e.Value).
func (t *Map[K, V]) AddEntry(e Entry[K, V]) (prev V, replaced bool) {
	return t.Add(e.Key, e.Value)
}

// Replace overwrites the value of an existing key. It returns
// ErrKeyNotFound, leaving the map untouched, if key is absent.
func (t *Map[K, V]) Replace(key K, value V) error {
	r := t.find(key)
	if r == nilRef {
		return notFound(key)
	}
	t.nodes.at(r).val = value
	return nil
}

// ReplaceFunc sets the value of an existing key to f(key, old value).
// It returns ErrKeyNotFound, without calling f, if key is absent.
func (t *Map[K, V]) ReplaceFunc(key K, f func(key K, value V) V) error {
	r := t.find(key)
	if r == nilRef {
		return notFound(key)
	}
	n := t.nodes.at(r)
	val := f(n.key, n.val)
	// f may have changed the map, so go through Add rather than n.
	t.Add(key, val)
	return nil
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (t *Map[K, V]) Get(key K) (val V, err error) {
	r := t.find(key)
	if r == nilRef {
		return val, notFound(key)
	}
	return t.nodes.at(r).val, nil
}

// Lookup is the comma-ok form of Get.
func (t *Map[K, V]) Lookup(key K) (val V, found bool) {
	r := t.find(key)
	if r == nilRef {
		return
	}
	return t.nodes.at(r).val, true
}

// ContainsKey reports whether key is in the map.
func (t *Map[K, V]) ContainsKey(key K) bool {
	return t.find(key) != nilRef
}

// ContainsValueFunc reports whether any value satisfies match. It visits
// every entry in key order, so it is O(n).
func (t *Map[K, V]) ContainsValueFunc(match func(value V) bool) bool {
	for r := t.minRef(t.root); r != nilRef; r = t.next(r) {
		if match(t.nodes.at(r).val) {
			return true
		}
	}
	return false
}

// ContainsValue reports whether value is stored under any key of t.
func ContainsValue[K any, V comparable](t *Map[K, V], value V) bool {
	return t.ContainsValueFunc(func(v V) bool { return v == value })
}

// Remove deletes key and returns the value it held. It returns
// ErrKeyNotFound, leaving the map untouched, if key is absent.
func (t *Map[K, V]) Remove(key K) (val V, err error) {
	r := t.find(key)
	if r == nilRef {
		return val, notFound(key)
	}
	val = t.nodes.at(r).val
	t.deleteNode(r)
	return val, nil
}

// RemoveMin removes the entry with the smallest key and returns it. found
// is false if the map was empty.
func (t *Map[K, V]) RemoveMin() (e Entry[K, V], found bool) {
	r := t.minRef(t.root)
	if r == nilRef {
		return
	}
	e = t.entry(r)
	t.deleteNode(r)
	return e, true
}

// RemoveMax removes the entry with the largest key and returns it. found
// is false if the map was empty.
func (t *Map[K, V]) RemoveMax() (e Entry[K, V], found bool) {
	r := t.maxRef(t.root)
	if r == nilRef {
		return
	}
	e = t.entry(r)
	t.deleteNode(r)
	return e, true
}

// deleteNode unlinks the node at z.
//
// With at most one child, z's child takes its place. With two children
// the in-order successor's key and value are copied into z and the
// successor, which has no left child, is unlinked instead.
func (t *Map[K, V]) deleteNode(z ref) {
	n := t.nodes.at(z)
	switch {
	case n.left == nilRef:
		t.transplant(z, n.right)
		t.nodes.freeNode(z)
	case n.right == nilRef:
		t.transplant(z, n.left)
		t.nodes.freeNode(z)
	default:
		s := t.minRef(n.right)
		succ := t.nodes.at(s)
		pp("deleteNode: two children at %v, pulling successor %v", n.key, succ.key)
		n.key, n.val = succ.key, succ.val
		t.transplant(s, succ.right)
		t.nodes.freeNode(s)
	}
	t.length--
	t.version++
}

// transplant puts the subtree v where the subtree u was.
func (t *Map[K, V]) transplant(u, v ref) {
	p := t.nodes.at(u).parent
	switch {
	case p == nilRef:
		t.root = v
	case t.nodes.at(p).left == u:
		t.nodes.at(p).left = v
	default:
		t.nodes.at(p).right = v
	}
	if v != nilRef {
		t.nodes.at(v).parent = p
	}
}

// Min returns the entry with the smallest key. found is false if the map
// is empty.
func (t *Map[K, V]) Min() (e Entry[K, V], found bool) {
	r := t.minRef(t.root)
	if r == nilRef {
		return
	}
	return t.entry(r), true
}

// Max returns the entry with the largest key. found is false if the map
// is empty.
func (t *Map[K, V]) Max() (e Entry[K, V], found bool) {
	r := t.maxRef(t.root)
	if r == nilRef {
		return
	}
	return t.entry(r), true
}

// Len returns the number of entries currently in the map.
func (t *Map[K, V]) Len() int {
	return t.length
}

// IsEmpty reports whether Len() == 0.
func (t *Map[K, V]) IsEmpty() bool {
	return t.length == 0
}

// Clear removes all entries in O(1) tree work. The arena keeps its
// capacity, so refilling the map to its old size does not reallocate.
func (t *Map[K, V]) Clear() {
	t.nodes.reset()
	t.root, t.length = nilRef, 0
	t.version++
}

// Clone returns an independent copy of t. It copies the node arena, so it
// is O(n), and later writes to either map are not seen by the other.
func (t *Map[K, V]) Clone() *Map[K, V] {
	out := *t
	out.nodes = t.nodes.clone()
	return &out
}

// Height returns the number of nodes on the longest root-to-leaf path, 0
// for an empty map. Since the tree is never rebalanced, Height can be as
// large as Len.
func (t *Map[K, V]) Height() int {
	if t.root == nilRef {
		return 0
	}
	type frame struct {
		r     ref
		depth int
	}
	h := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > h {
			h = f.depth
		}
		n := t.nodes.at(f.r)
		if n.left != nilRef {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != nilRef {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}
	return h
}

func (t *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("treemap{")
	extra := ""
	for r := t.minRef(t.root); r != nilRef; r = t.next(r) {
		b.WriteString(extra)
		extra = ", "
		n := t.nodes.at(r)
		fmt.Fprintf(&b, "%v:%v", n.key, n.val)
	}
	b.WriteString("}")
	return b.String()
}

// Print writes the tree shape to w, one node per line, children indented
// under their parent with the left child first.
// Used for testing/debugging purposes.
func (t *Map[K, V]) Print(w io.Writer) {
	type frame struct {
		r     ref
		level int
		side  string
	}
	if t.root == nilRef {
		return
	}
	stack := []frame{{t.root, 0, "root"}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes.at(f.r)
		fmt.Fprintf(w, "%s%s:%v=%v\n", strings.Repeat("  ", f.level), f.side, n.key, n.val)
		if n.right != nilRef {
			stack = append(stack, frame{n.right, f.level + 1, "R"})
		}
		if n.left != nilRef {
			stack = append(stack, frame{n.left, f.level + 1, "L"})
		}
	}
}
