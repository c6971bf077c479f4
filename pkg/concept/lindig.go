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
package concept

import (
	"github.com/go-fca/lattice/internal/collection/hash"
	"github.com/go-fca/lattice/internal/collection/set"
	"github.com/go-fca/lattice/pkg/bitset"
)

// upperNeighbors computes the immediate ancestors (upper covers) of the
// concept with the given extent, per Lindig's neighbor-generation
// procedure. The ascending scan together with the witness test
// deterministically selects exactly one representative per cover, so no
// neighbor is emitted twice.
func (c *Context) upperNeighbors(extent bitset.Set) []Concept {
	min := extent.Not()

	var neighbors []Concept

	for i := uint(0); i < c.nObjects; i++ {
		if !min.Get(i) {
			continue
		}

		candidate := extent.Clone()
		candidate.Set(i, true)

		e, in := c.DoublePrimeObjects(candidate)
		witness := e.AndNot(candidate).And(min)

		if !witness.IsEmpty() {
			min.Set(i, false)
			continue
		}

		neighbors = append(neighbors, Concept{Extent: e, Intent: in})
	}

	return neighbors
}

// worklistEntry pairs a pending concept's extent (used for shortlex
// ordering) with its already-assigned index in the output sequence.
type worklistEntry struct {
	extent bitset.Set
	index  int
}

// Cmp orders worklist entries by the shortlex order of their extent, as
// required to guarantee every lower cover of a concept is emitted before
// that concept is popped for expansion.
func (w worklistEntry) Cmp(other worklistEntry) int {
	return w.extent.Cmp(other.extent)
}

// Lindig enumerates every formal concept of c reachable by upward closure
// from the given starting extent (typically ⊥_O, the empty extent, which
// closes to the bottom of the lattice), together with the covering relation
// of the concept lattice they form. Concepts are returned in the order they
// are popped from the shortlex worklist, which guarantees index(bottom) = 0
// and, for every cover edge u → v, index(u) < index(v).
func Lindig(c *Context, infimum bitset.Set) []LatticeConcept {
	bottomExtent, bottomIntent := c.DoublePrimeObjects(infimum)

	concepts := []LatticeConcept{{Concept: Concept{Extent: bottomExtent, Intent: bottomIntent}}}

	seen := hash.NewMap[bitset.Set, int](8)
	seen.Insert(bottomExtent, 0)

	worklist := set.NewWorklist[worklistEntry]()
	worklist.Insert(worklistEntry{extent: bottomExtent, index: 0})

	// pos maps a discovery index to its position in pop (shortlex) order.
	pos := make(map[int]int)

	for !worklist.IsEmpty() {
		current := worklist.PopMin()
		pos[current.index] = len(pos)

		for _, nb := range c.upperNeighbors(current.extent) {
			if idx, ok := seen.Get(nb.Extent); ok {
				concepts[current.index].Upper = append(concepts[current.index].Upper, idx)
				concepts[idx].Lower = append(concepts[idx].Lower, current.index)

				continue
			}

			idx := len(concepts)
			concepts = append(concepts, LatticeConcept{
				Concept: nb,
				Lower:   []int{current.index},
			})
			concepts[current.index].Upper = append(concepts[current.index].Upper, idx)

			seen.Insert(nb.Extent, idx)
			worklist.Insert(worklistEntry{extent: nb.Extent, index: idx})
		}
	}

	out := make([]LatticeConcept, len(concepts))
	for old, lc := range concepts {
		for k, v := range lc.Upper {
			lc.Upper[k] = pos[v]
		}
		for k, v := range lc.Lower {
			lc.Lower[k] = pos[v]
		}
		out[pos[old]] = lc
	}

	return out
}
