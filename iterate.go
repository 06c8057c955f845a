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

// EntryIterator allows callers of Ascend* and Descend* to iterate in-order
// over portions of the map. When it returns false, iteration stops and
// the Ascend* or Descend* call returns immediately.
type EntryIterator[K any, V any] func(key K, value V) bool

type direction int

const (
	descend = direction(-1)
	ascend  = direction(+1)
)

// next returns the in-order successor of r, or nilRef if r is the last
// node. It climbs parent links, so it needs no stack.
func (t *Map[K, V]) next(r ref) ref {
	n := t.nodes.at(r)
	if n.right != nilRef {
		return t.minRef(n.right)
	}
	p := n.parent
	for p != nilRef && t.nodes.at(p).right == r {
		r, p = p, t.nodes.at(p).parent
	}
	return p
}

// prev returns the in-order predecessor of r, or nilRef.
func (t *Map[K, V]) prev(r ref) ref {
	n := t.nodes.at(r)
	if n.left != nilRef {
		return t.maxRef(n.left)
	}
	p := n.parent
	for p != nilRef && t.nodes.at(p).left == r {
		r, p = p, t.nodes.at(p).parent
	}
	return p
}

func (t *Map[K, V]) step(dir direction, r ref) ref {
	if dir == ascend {
		return t.next(r)
	}
	return t.prev(r)
}

// walk yields entries from r onwards in direction dir until stop reports
// true for a key, yield returns false or the map runs out.
//
// yield may add or remove entries. When the node count changed across a
// yield, the position of r can no longer be trusted, so walk looks up the
// first key strictly beyond the last one it yielded and carries on from
// there.
func (t *Map[K, V]) walk(dir direction, r ref, stop func(K) bool, yield func(K, V) bool) {
	for r != nilRef {
		n := t.nodes.at(r)
		key, val := n.key, n.val
		if stop != nil && stop(key) {
			return
		}
		vers := t.version
		if !yield(key, val) {
			return
		}
		if t.version != vers {
			pp("walk: map changed under iteration, re-seeking past %v", key)
			if dir == ascend {
				r = t.ceil(key, false)
			} else {
				r = t.floor(key, false)
			}
			continue
		}
		r = t.step(dir, r)
	}
}

// iterate is the common body of the Ascend* and Descend* calls.
//
// When ascending, start should be less than stop and when descending,
// start should be greater than stop. A nil start means the first entry in
// that direction and a nil stop means no bound. Setting includeStart
// makes start itself eligible, giving "greaterOrEqual" or "lessOrEqual"
// rather than "greaterThan" or "lessThan" queries. stop is always
// exclusive.
func (t *Map[K, V]) iterate(dir direction, start, stop *K, includeStart bool, iter EntryIterator[K, V]) {
	var r ref
	var past func(K) bool
	switch dir {
	case ascend:
		if start == nil {
			r = t.minRef(t.root)
		} else {
			r = t.ceil(*start, includeStart)
		}
		if stop != nil {
			past = func(k K) bool { return t.compare(k, *stop) >= 0 }
		}
	case descend:
		if start == nil {
			r = t.maxRef(t.root)
		} else {
			r = t.floor(*start, includeStart)
		}
		if stop != nil {
			past = func(k K) bool { return t.compare(k, *stop) <= 0 }
		}
	default:
		panic("invalid direction")
	}
	t.walk(dir, r, past, iter)
}

// AscendRange calls the iterator for every entry in the map within the
// range [greaterOrEqual, lessThan), until iterator returns false.
func (t *Map[K, V]) AscendRange(greaterOrEqual, lessThan K, iterator EntryIterator[K, V]) {
	t.iterate(ascend, &greaterOrEqual, &lessThan, true, iterator)
}

// AscendLessThan calls the iterator for every entry in the map within the
// range [first, pivot), until iterator returns false.
func (t *Map[K, V]) AscendLessThan(pivot K, iterator EntryIterator[K, V]) {
	t.iterate(ascend, nil, &pivot, false, iterator)
}

// AscendGreaterOrEqual calls the iterator for every entry in the map
// within the range [pivot, last], until iterator returns false.
func (t *Map[K, V]) AscendGreaterOrEqual(pivot K, iterator EntryIterator[K, V]) {
	t.iterate(ascend, &pivot, nil, true, iterator)
}

// Ascend calls the iterator for every entry in the map within the range
// [first, last], until iterator returns false.
func (t *Map[K, V]) Ascend(iterator EntryIterator[K, V]) {
	t.iterate(ascend, nil, nil, false, iterator)
}

// DescendRange calls the iterator for every entry in the map within the
// range [lessOrEqual, greaterThan), until iterator returns false.
func (t *Map[K, V]) DescendRange(lessOrEqual, greaterThan K, iterator EntryIterator[K, V]) {
	t.iterate(descend, &lessOrEqual, &greaterThan, true, iterator)
}

// DescendLessOrEqual calls the iterator for every entry in the map within
// the range [pivot, first], until iterator returns false.
func (t *Map[K, V]) DescendLessOrEqual(pivot K, iterator EntryIterator[K, V]) {
	t.iterate(descend, &pivot, nil, true, iterator)
}

// DescendGreaterThan calls the iterator for every entry in the map within
// the range [last, pivot), until iterator returns false.
func (t *Map[K, V]) DescendGreaterThan(pivot K, iterator EntryIterator[K, V]) {
	t.iterate(descend, nil, &pivot, false, iterator)
}

// Descend calls the iterator for every entry in the map within the range
// [last, first], until iterator returns false.
func (t *Map[K, V]) Descend(iterator EntryIterator[K, V]) {
	t.iterate(descend, nil, nil, false, iterator)
}

// All returns a sequence over every entry in ascending key order. The
// sequence can be ranged over any number of times; each pass reflects the
// map as it is when that pass reaches each key.
//
// The loop body may remove the current key, or any other, and the
// iteration carries on with the next key still present.
func (t *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.walk(ascend, t.minRef(t.root), nil, yield)
	}
}

// Backward is All in descending key order.
func (t *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.walk(descend, t.maxRef(t.root), nil, yield)
	}
}

// Keys returns every key in ascending order.
func (t *Map[K, V]) Keys() []K {
	out := make([]K, 0, t.length)
	for r := t.minRef(t.root); r != nilRef; r = t.next(r) {
		out = append(out, t.nodes.at(r).key)
	}
	return out
}

// Values returns every value, ordered by key.
func (t *Map[K, V]) Values() []V {
	out := make([]V, 0, t.length)
	for r := t.minRef(t.root); r != nilRef; r = t.next(r) {
		out = append(out, t.nodes.at(r).val)
	}
	return out
}

// Entries returns every entry in ascending key order. The slice is a copy;
// changing it does not affect the map.
func (t *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.length)
	for r := t.minRef(t.root); r != nilRef; r = t.next(r) {
		out = append(out, t.entry(r))
	}
	return out
}
