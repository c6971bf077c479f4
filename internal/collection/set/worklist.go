// Copyright go-fca Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package set provides a sorted worklist keyed on a caller-supplied total
// order.  It backs Lindig's shortlex-ordered worklist: items are always
// popped in ascending order without a full sort on every iteration.
package set

import "sort"

// Comparable is implemented by any type with a total order usable in a
// Worklist.  Cmp returns <0 if this is less than other, 0 if equal, >0 if
// greater.
type Comparable[T any] interface {
	Cmp(other T) int
}

// Worklist is a min-priority queue backed by an insertion-sorted array. It is
// intentionally simple: the concept engines push O(concepts) items in total,
// so an O(log n) search plus O(n) shift per insert is not a bottleneck, and
// it avoids pulling in a full generic heap implementation for a queue that
// only ever holds a handful of pending concepts at once.
type Worklist[T Comparable[T]] struct {
	items []T
}

// NewWorklist returns an empty worklist.
func NewWorklist[T Comparable[T]]() *Worklist[T] {
	return &Worklist[T]{}
}

// IsEmpty checks whether the worklist holds any items.
func (p *Worklist[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Insert adds an item to the worklist, maintaining ascending order.
func (p *Worklist[T]) Insert(item T) {
	data := p.items
	i := sort.Search(len(data), func(i int) bool {
		return item.Cmp(data[i]) <= 0
	})

	p.items = append(p.items, item)
	copy(p.items[i+1:], p.items[i:])
	p.items[i] = item
}

// PopMin removes and returns the smallest item in the worklist.
func (p *Worklist[T]) PopMin() T {
	if len(p.items) == 0 {
		panic("worklist: cannot pop from empty worklist")
	}

	item := p.items[0]
	p.items = p.items[1:]

	return item
}
