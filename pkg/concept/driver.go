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

import "github.com/go-fca/lattice/pkg/bitset"

// RunLindig constructs a Context from the given dual incidence families and
// runs Lindig's algorithm, returning concepts and cover edges in a single
// pass. infimum is the starting extent (callers pass bitset.New(nObjects)
// for "start from the empty extent", which closes to the bottom of the
// lattice); starting from a non-bottom extent enumerates only the concepts
// reachable upward from its closure, not the full lattice.
func RunLindig(nObjects, nProperties uint, extents, intents []bitset.Set, infimum bitset.Set) []LatticeConcept {
	ctx := NewContext(nObjects, nProperties, extents, intents)

	return Lindig(ctx, infimum)
}

// RunFCBO constructs a Context from the given dual incidence families and
// runs Fast Close-by-One, returning every concept with no fixed externally
// meaningful order.
func RunFCBO(nObjects, nProperties uint, extents, intents []bitset.Set) []Concept {
	ctx := NewContext(nObjects, nProperties, extents, intents)

	return FCBO(ctx)
}

// RunFCBODual constructs a Context from the given dual incidence families
// and runs the dual (by-extent) variant of Fast Close-by-One, preferred
// when nObjects < nProperties.
func RunFCBODual(nObjects, nProperties uint, extents, intents []bitset.Set) []Concept {
	ctx := NewContext(nObjects, nProperties, extents, intents)

	return FCBODual(ctx)
}

// LindigFromUint64 is the small-context convenience path: extents and
// intents are encoded as machine words (bit i set iff incident), per the
// reference boundary encoding for contexts up to 64 objects/properties.
func LindigFromUint64(nObjects, nProperties uint, extents, intents []uint64, infimum uint64) []LatticeConcept {
	e, i := fromUint64Families(nObjects, nProperties, extents, intents)

	return RunLindig(nObjects, nProperties, e, i, bitset.FromUint64(nObjects, infimum))
}

// FCBOFromUint64 is the small-context convenience path for RunFCBO.
func FCBOFromUint64(nObjects, nProperties uint, extents, intents []uint64) []Concept {
	e, i := fromUint64Families(nObjects, nProperties, extents, intents)

	return RunFCBO(nObjects, nProperties, e, i)
}

// FCBODualFromUint64 is the small-context convenience path for RunFCBODual.
func FCBODualFromUint64(nObjects, nProperties uint, extents, intents []uint64) []Concept {
	e, i := fromUint64Families(nObjects, nProperties, extents, intents)

	return RunFCBODual(nObjects, nProperties, e, i)
}

func fromUint64Families(nObjects, nProperties uint, extents, intents []uint64) ([]bitset.Set, []bitset.Set) {
	e := make([]bitset.Set, len(extents))
	for j, v := range extents {
		e[j] = bitset.FromUint64(nObjects, v)
	}

	i := make([]bitset.Set, len(intents))
	for k, v := range intents {
		i[k] = bitset.FromUint64(nProperties, v)
	}

	return e, i
}
