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
	"github.com/go-fca/lattice/internal/collection/stack"
	"github.com/go-fca/lattice/pkg/bitset"
)

// fcboFrame is one stack frame of the FCBO depth-first search: the concept
// being expanded, the smallest index eligible for further extension, and
// the inherited failed-closure array used to short-circuit canonicity
// tests. Each frame owns its failed clone; backtracking drops the frame and
// the clone with it.
type fcboFrame struct {
	concept Concept
	pivot   uint
	failed  []bitset.Set
}

func cloneFailed(failed []bitset.Set) []bitset.Set {
	out := make([]bitset.Set, len(failed))
	copy(out, failed)

	return out
}

// FCBO enumerates every formal concept of c using Fast Close-by-One's
// canonicity test, extending the intent one property at a time. Each
// concept is emitted exactly once, in an implementation-defined but
// deterministic order; callers needing a specific order must sort.
func FCBO(c *Context) []Concept {
	top := bitset.Universal(c.nObjects)
	extent, intent := c.DoublePrimeObjects(top)

	initialFailed := make([]bitset.Set, c.nProperties)
	for j := range initialFailed {
		initialFailed[j] = bitset.New(c.nProperties)
	}

	st := stack.New[fcboFrame]()
	st.Push(fcboFrame{concept: Concept{Extent: extent, Intent: intent}, pivot: 0, failed: initialFailed})

	var out []Concept

	for !st.IsEmpty() {
		frame := st.Pop()
		out = append(out, frame.concept)

		if frame.pivot == c.nProperties || frame.concept.Extent.IsEmpty() {
			continue
		}

		// Descending order so that children, pushed onto the LIFO stack,
		// are popped in ascending j order — the canonical enumeration
		// order the canonicity test assumes.
		for j := c.nProperties; j > frame.pivot; j-- {
			jj := j - 1

			if frame.concept.Intent.Get(jj) {
				continue
			}

			mask := bitset.Atom(c.nProperties, jj).Decrement()

			x := frame.failed[jj].And(mask)
			if !x.IsSubsetOf(frame.concept.Intent) {
				continue
			}

			ej := frame.concept.Extent.And(c.extents[jj])
			ij := c.PrimeObjects(ej)

			lower := ij.And(mask)
			if lower.IsSubsetOf(frame.concept.Intent) {
				st.Push(fcboFrame{
					concept: Concept{Extent: ej, Intent: ij},
					pivot:   jj + 1,
					failed:  cloneFailed(frame.failed),
				})
			} else {
				frame.failed[jj] = ij
			}
		}
	}

	return out
}

// fcboDualFrame mirrors fcboFrame with the roles of extent and intent
// swapped: the dual engine extends the extent one object at a time instead
// of the intent one property at a time.
type fcboDualFrame struct {
	concept Concept
	pivot   uint
	failed  []bitset.Set
}

// FCBODual enumerates every formal concept of c, structurally identical to
// FCBO but with the roles of objects/properties, extents/intents and the
// prime operators swapped: it extends the extent one object at a time
// instead of the intent one property at a time. Preferred when |O| < |P|,
// since the DFS branching factor is then bounded by the smaller dimension.
//
// The initial frame closes ⊤_P (all properties), which yields the bottom
// concept of the lattice (dual to FCBO's initial frame closing ⊤_O into the
// top concept): the extent of all properties shared is typically smallest,
// and growing the object generator set from there walks the lattice
// upward by extent, mirroring FCBO's downward walk by intent.
func FCBODual(c *Context) []Concept {
	seed := bitset.Universal(c.nProperties)
	intent, extent := c.DoublePrimeProperties(seed)

	initialFailed := make([]bitset.Set, c.nObjects)
	for i := range initialFailed {
		initialFailed[i] = bitset.New(c.nObjects)
	}

	st := stack.New[fcboDualFrame]()
	st.Push(fcboDualFrame{concept: Concept{Extent: extent, Intent: intent}, pivot: 0, failed: initialFailed})

	var out []Concept

	for !st.IsEmpty() {
		frame := st.Pop()
		out = append(out, frame.concept)

		if frame.pivot == c.nObjects || frame.concept.Intent.IsEmpty() {
			continue
		}

		for i := c.nObjects; i > frame.pivot; i-- {
			ii := i - 1

			if frame.concept.Extent.Get(ii) {
				continue
			}

			mask := bitset.Atom(c.nObjects, ii).Decrement()

			x := frame.failed[ii].And(mask)
			if !x.IsSubsetOf(frame.concept.Extent) {
				continue
			}

			ei := frame.concept.Intent.And(c.intents[ii])
			ai := c.PrimeProperties(ei)

			lower := ai.And(mask)
			if lower.IsSubsetOf(frame.concept.Extent) {
				st.Push(fcboDualFrame{
					concept: Concept{Extent: ai, Intent: ei},
					pivot:   ii + 1,
					failed:  cloneFailed(frame.failed),
				})
			} else {
				frame.failed[ii] = ai
			}
		}
	}

	return out
}
