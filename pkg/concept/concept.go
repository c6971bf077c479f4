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

// Concept is a formal concept (A, B): a pair of bitsets with A′ = B and
// B′ = A. Extent and Intent are both closed by construction. Concepts are
// produced exactly once per enumeration run and never mutated thereafter.
type Concept struct {
	Extent bitset.Set
	Intent bitset.Set
}

// LatticeConcept is a Concept augmented with the Hasse-diagram cover lists
// that Lindig's engine builds incrementally as neighbors are discovered.
// Upper and Lower hold indices into the output sequence that produced this
// concept.
type LatticeConcept struct {
	Concept
	// Upper holds the indices of this concept's immediate ancestors
	// (concepts whose extent strictly contains this one with nothing
	// between).
	Upper []int
	// Lower holds the indices of this concept's immediate descendants.
	Lower []int
}
