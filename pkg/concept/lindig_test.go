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
	"testing"

	"github.com/go-fca/lattice/pkg/bitset"
)

// Test_Lindig_EmptyContext covers scenario 1: n_objects = n_properties = 0.
// A single concept (⊥, ⊥) with empty covers.
func Test_Lindig_EmptyContext(t *testing.T) {
	concepts := RunLindig(0, 0, nil, nil, bitset.New(0))

	if len(concepts) != 1 {
		t.Fatalf("expected exactly 1 concept, got %d", len(concepts))
	}

	c := concepts[0]
	if !c.Extent.IsEmpty() || !c.Intent.IsEmpty() {
		t.Errorf("expected (⊥, ⊥), got (%v, %v)", c.Extent, c.Intent)
	}

	if len(c.Upper) != 0 || len(c.Lower) != 0 {
		t.Errorf("expected empty covers, got upper=%v lower=%v", c.Upper, c.Lower)
	}
}

// Test_Lindig_SingleObjectNoProperties covers scenario 2.
func Test_Lindig_SingleObjectNoProperties(t *testing.T) {
	concepts := LindigFromUint64(1, 1, []uint64{0b0}, []uint64{0b0}, 0)

	if len(concepts) != 2 {
		t.Fatalf("expected 2 concepts, got %d", len(concepts))
	}

	bottom, top := concepts[0], concepts[1]

	if !bottom.Extent.IsEmpty() || bottom.Intent.Count() != 1 {
		t.Errorf("expected bottom (∅,{0}), got (%v,%v)", bottom.Extent, bottom.Intent)
	}

	if top.Extent.Count() != 1 || !top.Intent.IsEmpty() {
		t.Errorf("expected top ({0},∅), got (%v,%v)", top.Extent, top.Intent)
	}

	if len(top.Lower) != 1 || top.Lower[0] != 0 {
		t.Errorf("expected top's lower cover to be [0], got %v", top.Lower)
	}

	if len(bottom.Upper) != 1 || bottom.Upper[0] != 1 {
		t.Errorf("expected bottom's upper cover to be [1], got %v", bottom.Upper)
	}
}

// Test_Lindig_Identity2x2 covers scenario 3: four concepts, diamond shape.
func Test_Lindig_Identity2x2(t *testing.T) {
	concepts := LindigFromUint64(2, 2, []uint64{0b01, 0b10}, []uint64{0b01, 0b10}, 0)

	if len(concepts) != 4 {
		t.Fatalf("expected 4 concepts, got %d", len(concepts))
	}

	bottom := concepts[0]
	if !bottom.Extent.IsEmpty() || bottom.Intent.Count() != 2 {
		t.Fatalf("expected bottom (∅,{0,1}), got (%v,%v)", bottom.Extent, bottom.Intent)
	}

	if len(bottom.Upper) != 2 {
		t.Errorf("expected bottom to have 2 upper covers, got %d", len(bottom.Upper))
	}

	var top *LatticeConcept

	for i := range concepts {
		if concepts[i].Extent.Count() == 2 {
			top = &concepts[i]
		}
	}

	if top == nil {
		t.Fatalf("expected a top concept with extent {0,1}")
	}

	if len(top.Lower) != 2 {
		t.Errorf("expected top to have 2 lower covers, got %d", len(top.Lower))
	}

	if !top.Intent.IsEmpty() {
		t.Errorf("expected top intent ∅, got %v", top.Intent)
	}

	// No edge should connect the two middle concepts to each other.
	for i := range concepts {
		mid := concepts[i].Extent.Count() == 1
		if !mid {
			continue
		}

		for _, u := range concepts[i].Upper {
			if concepts[u].Extent.Count() == 1 {
				t.Errorf("unexpected edge between middle concepts %d and %d", i, u)
			}
		}
	}
}

// Test_Lindig_Full2x2 covers scenario 4: a single concept.
func Test_Lindig_Full2x2(t *testing.T) {
	concepts := LindigFromUint64(2, 2, []uint64{0b11, 0b11}, []uint64{0b11, 0b11}, 0)

	if len(concepts) != 1 {
		t.Fatalf("expected 1 concept, got %d", len(concepts))
	}

	if concepts[0].Extent.Count() != 2 || concepts[0].Intent.Count() != 2 {
		t.Errorf("expected ({0,1},{0,1}), got (%v,%v)", concepts[0].Extent, concepts[0].Intent)
	}
}

// Test_Lindig_ChainOfThree covers scenario 5. Object 2 has every property, so
// the bottom concept is ({2},{0,1,2}) and the lattice is a 3-concept chain.
func Test_Lindig_ChainOfThree(t *testing.T) {
	extents := []uint64{0b111, 0b110, 0b100}
	intents := []uint64{0b001, 0b011, 0b111}

	concepts := LindigFromUint64(3, 3, extents, intents, 0)

	if len(concepts) != 3 {
		t.Fatalf("expected 3 concepts, got %d", len(concepts))
	}

	// A chain: no concept has more than one lower cover or more than one
	// upper cover.
	for i, c := range concepts {
		if len(c.Lower) > 1 {
			t.Errorf("concept %d: expected at most 1 lower cover in a chain, got %d", i, len(c.Lower))
		}

		if len(c.Upper) > 1 {
			t.Errorf("concept %d: expected at most 1 upper cover in a chain, got %d", i, len(c.Upper))
		}
	}

	if len(concepts[0].Lower) != 0 {
		t.Errorf("expected bottom at index 0 with no lower covers")
	}
}

// Test_Lindig_Ordering checks index(bottom) = 0 and index(u) < index(v) for
// every cover edge u -> v.
func Test_Lindig_Ordering(t *testing.T) {
	extents := []uint64{0b111, 0b110, 0b100}
	intents := []uint64{0b001, 0b011, 0b111}

	concepts := LindigFromUint64(3, 3, extents, intents, 0)

	// Object 2 has every property, so the bottom concept's extent is {2}.
	if !concepts[0].Extent.Equals(bitset.FromUint64(3, 0b100)) {
		t.Errorf("expected index 0 to be the bottom concept")
	}

	for u, c := range concepts {
		for _, v := range c.Upper {
			if !(u < v) {
				t.Errorf("expected index(%d) < index(%d) for cover edge", u, v)
			}

			if concepts[u].Extent.Cmp(concepts[v].Extent) >= 0 {
				t.Errorf("expected extent(%d) strictly smaller than extent(%d)", u, v)
			}
		}
	}
}
