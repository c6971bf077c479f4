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

// Package concept implements the Formal Concept Analysis core: the
// incidence Context, its Galois (prime) operators, and the Lindig and FCBO
// enumeration engines built on top of them.
package concept

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-fca/lattice/pkg/bitset"
)

// Context holds an incidence relation I ⊆ O × P in both dual
// representations, giving O(1) access to either the objects incident with a
// property or the properties incident with an object. Contexts are
// immutable once constructed.
type Context struct {
	nObjects    uint
	nProperties uint
	// extents[j] is the set of objects incident with property j.
	extents []bitset.Set
	// intents[i] is the set of properties incident with object i.
	intents []bitset.Set
}

// NewContext constructs a Context from the dual incidence families. extents
// must have length nProperties, each of width nObjects; intents must have
// length nObjects, each of width nProperties. Callers are trusted to supply
// mutually consistent families per the invariant i ∈ extents[j] ⇔ j ∈
// intents[i] — this is validated once here as a debug-mode assertion, not
// re-checked on every subsequent closure.
func NewContext(nObjects, nProperties uint, extents, intents []bitset.Set) *Context {
	if uint(len(extents)) != nProperties {
		log.Errorf("context: expected %d extents, got %d", nProperties, len(extents))
		panic("context: extents length mismatch")
	}

	if uint(len(intents)) != nObjects {
		log.Errorf("context: expected %d intents, got %d", nObjects, len(intents))
		panic("context: intents length mismatch")
	}

	for j, e := range extents {
		if e.Len() != nObjects {
			log.Errorf("context: extents[%d] has width %d, expected %d", j, e.Len(), nObjects)
			panic("context: width mismatch")
		}
	}

	for i, in := range intents {
		if in.Len() != nProperties {
			log.Errorf("context: intents[%d] has width %d, expected %d", i, in.Len(), nProperties)
			panic("context: width mismatch")
		}
	}

	c := &Context{nObjects: nObjects, nProperties: nProperties, extents: extents, intents: intents}
	c.assertConsistent()

	return c
}

// assertConsistent validates i ∈ extents[j] ⇔ j ∈ intents[i] for all i, j.
// This is an O(|O|·|P|) debug check performed once at construction, not in
// any hot path.
func (c *Context) assertConsistent() {
	for j := uint(0); j < c.nProperties; j++ {
		for i := uint(0); i < c.nObjects; i++ {
			if c.extents[j].Get(i) != c.intents[i].Get(j) {
				log.Errorf("context: inconsistent incidence at object %d, property %d", i, j)
				panic("context: inconsistent incidence")
			}
		}
	}
}

// NumObjects returns |O|.
func (c *Context) NumObjects() uint {
	return c.nObjects
}

// NumProperties returns |P|.
func (c *Context) NumProperties() uint {
	return c.nProperties
}

// PrimeObjects computes A′: the properties shared by every object in A. The
// empty intersection (A = ∅) yields ⊤_P.
func (c *Context) PrimeObjects(a bitset.Set) bitset.Set {
	result := bitset.Universal(c.nProperties)

	for _, i := range a.Bits() {
		result = result.And(c.intents[i])
	}

	return result
}

// PrimeProperties computes B′: the objects sharing every property in B. The
// empty intersection (B = ∅) yields ⊤_O.
func (c *Context) PrimeProperties(b bitset.Set) bitset.Set {
	result := bitset.Universal(c.nObjects)

	for _, j := range b.Bits() {
		result = result.And(c.extents[j])
	}

	return result
}

// DoublePrimeObjects computes the closure of an object set A, returning
// (A″, A′) — i.e. (extent, intent) — in that order.
func (c *Context) DoublePrimeObjects(a bitset.Set) (extent, intent bitset.Set) {
	intent = c.PrimeObjects(a)
	extent = c.PrimeProperties(intent)

	return extent, intent
}

// DoublePrimeProperties computes the closure of a property set B, returning
// (B″, B′) — i.e. (intent, extent) — in that order. This is the dual of
// DoublePrimeObjects, used to seed the FCBO-dual engine.
func (c *Context) DoublePrimeProperties(b bitset.Set) (intent, extent bitset.Set) {
	extent = c.PrimeProperties(b)
	intent = c.PrimeObjects(extent)

	return intent, extent
}
