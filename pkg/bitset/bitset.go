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

// Package bitset provides an arbitrary-width, word-packed bit vector and the
// set algebra (union, intersection, complement, decrement) on which the
// concept-lattice engines are built.
package bitset

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

const wordBits = 64

// Set is a finite bit vector of fixed declared width.  Bits are packed
// LSB-first into 64-bit words: bit position p lives in word p/64 at bit p mod
// 64.  Bits beyond the declared width in the trailing word are always zero;
// every operation which writes the trailing word re-applies this mask.
type Set struct {
	n     uint
	words []uint64
}

func wordsFor(n uint) uint {
	return (n + wordBits - 1) / wordBits
}

// New returns the empty bitset (⊥) of the given declared width.
func New(n uint) Set {
	return Set{n: n, words: make([]uint64, wordsFor(n))}
}

// Universal returns the universal bitset (⊤) of the given declared width,
// i.e. all n bits set.
func Universal(n uint) Set {
	s := New(n)
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
	s.mask()
	return s
}

// Atom returns the singleton bitset of width n with exactly bit i set.
func Atom(n, i uint) Set {
	s := New(n)
	s.Set(i, true)
	return s
}

// FromWords constructs a bitset of declared width n directly from a
// little-endian word vector.  Bits at or beyond n are cleared regardless of
// what the supplied words contain.
func FromWords(n uint, words []uint64) Set {
	s := New(n)
	copy(s.words, words)
	s.mask()
	return s
}

// FromUint64 constructs a bitset of declared width n (n <= 64) from a single
// machine word.  This is the convenience path used by callers working with
// small contexts, per the reference boundary encoding.
func FromUint64(n uint, bits uint64) Set {
	if n > wordBits {
		log.Errorf("bitset: FromUint64 requires width <= 64, got %d", n)
		panic("bitset: width too large for FromUint64")
	}

	return FromWords(n, []uint64{bits})
}

// mask clears any bits at or beyond the declared width in the trailing word.
// This invariant must hold after any operation which writes that word.
func (p *Set) mask() {
	if p.n == 0 {
		if len(p.words) > 0 {
			p.words[0] = 0
		}

		return
	}

	rem := p.n % wordBits
	if rem == 0 {
		return
	}

	last := len(p.words) - 1
	p.words[last] &= (uint64(1) << rem) - 1
}

func assertSameWidth(a, b Set) {
	if a.n != b.n {
		log.Errorf("bitset: width mismatch (%d vs %d)", a.n, b.n)
		panic("bitset: width mismatch")
	}
}

// Len returns the declared width of this bitset.
func (p Set) Len() uint {
	return p.n
}

// Words returns the underlying little-endian word vector.  Callers must not
// mutate the returned slice.
func (p Set) Words() []uint64 {
	return p.words
}

// Clone creates a true copy of this bitset, ensuring no aliasing with the
// result.
func (p Set) Clone() Set {
	words := make([]uint64, len(p.words))
	copy(words, p.words)

	return Set{n: p.n, words: words}
}

// Get returns the value of the iᵗʰ bit.
func (p Set) Get(i uint) bool {
	if i >= p.n {
		return false
	}

	return p.words[i/wordBits]&(uint64(1)<<(i%wordBits)) != 0
}

// Set assigns the iᵗʰ bit to v.
func (p *Set) Set(i uint, v bool) {
	if i >= p.n {
		log.Errorf("bitset: index %d out of bounds for width %d", i, p.n)
		panic("bitset: index out of bounds")
	}

	mask := uint64(1) << (i % wordBits)
	if v {
		p.words[i/wordBits] |= mask
	} else {
		p.words[i/wordBits] &^= mask
	}
}

// IsEmpty checks whether every bit of this bitset is zero.
func (p Set) IsEmpty() bool {
	for _, w := range p.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Count returns the popcount of this bitset.
func (p Set) Count() uint {
	var count uint
	for _, w := range p.words {
		for w != 0 {
			count += uint(w & 1)
			w >>= 1
		}
	}

	return count
}

// Equals checks whether two bitsets have the same declared width and bit
// pattern.
func (p Set) Equals(other Set) bool {
	if p.n != other.n {
		return false
	}

	for i := range p.words {
		if p.words[i] != other.words[i] {
			return false
		}
	}

	return true
}

// And returns the bitwise intersection of this bitset with another of the
// same width.
func (p Set) And(other Set) Set {
	assertSameWidth(p, other)

	r := New(p.n)
	for i := range r.words {
		r.words[i] = p.words[i] & other.words[i]
	}

	return r
}

// Or returns the bitwise union of this bitset with another of the same
// width.
func (p Set) Or(other Set) Set {
	assertSameWidth(p, other)

	r := New(p.n)
	for i := range r.words {
		r.words[i] = p.words[i] | other.words[i]
	}

	return r
}

// Not returns the bitwise complement of this bitset, respecting the width
// mask.
func (p Set) Not() Set {
	r := New(p.n)
	for i := range r.words {
		r.words[i] = ^p.words[i]
	}

	r.mask()

	return r
}

// AndNot returns the set difference p \ other, i.e. p AND (NOT other).
func (p Set) AndNot(other Set) Set {
	assertSameWidth(p, other)

	r := New(p.n)
	for i := range r.words {
		r.words[i] = p.words[i] &^ other.words[i]
	}

	return r
}

// IsSubsetOf checks whether every bit set in p is also set in other, i.e.
// p ⊆ other.
func (p Set) IsSubsetOf(other Set) bool {
	assertSameWidth(p, other)

	for i := range p.words {
		if p.words[i]&^other.words[i] != 0 {
			return false
		}
	}

	return true
}

// Decrement computes x - 1, where x is interpreted as a natural number
// encoded in little-endian words, borrow propagating across words and the
// result re-masked to width n.  Applied to an atom at position j, this
// yields the mask of bit positions strictly less than j (the empty set for
// j=0, since that atom's value is 1).  Only the empty bitset underflows: it
// wraps to all n bits set.
func (p Set) Decrement() Set {
	r := p.Clone()

	for i := range r.words {
		if r.words[i] != 0 {
			r.words[i]--
			break
		}

		r.words[i] = ^uint64(0)
	}

	r.mask()

	return r
}

// Bits returns the set bit positions of this bitset in ascending order.
func (p Set) Bits() []uint {
	var out []uint

	for w := 0; w < len(p.words); w++ {
		word := p.words[w]
		for word != 0 {
			tz := trailingZeros64(word)
			out = append(out, uint(w*wordBits)+tz)
			word &= word - 1
		}
	}

	return out
}

// Atoms returns one singleton bitset per set bit, in ascending bit-position
// order.
func (p Set) Atoms() []Set {
	bits := p.Bits()
	out := make([]Set, len(bits))

	for i, b := range bits {
		out[i] = Atom(p.n, b)
	}

	return out
}

func trailingZeros64(w uint64) uint {
	var n uint
	for w&1 == 0 {
		w >>= 1
		n++
	}

	return n
}

// Hash returns an FNV1a hashcode over the declared width and word vector, for
// use as a key in the hash.Map collection when a bitset (being slice-backed
// and hence non-comparable) cannot serve as a native Go map key.
func (p Set) Hash() uint64 {
	const (
		offset64 uint64 = 14695981039346656037
		prime64  uint64 = 1099511628211
	)

	hash := offset64
	hash ^= uint64(p.n)
	hash *= prime64

	for _, w := range p.words {
		hash ^= w
		hash *= prime64
	}

	return hash
}

// Cmp implements the shortlex order: lexicographic order of the pair
// (popcount, words), with less-significant word compared first.  Returns <0
// if p < other, 0 if equal, >0 if p > other.
func (p Set) Cmp(other Set) int {
	pc, oc := p.Count(), other.Count()

	switch {
	case pc < oc:
		return -1
	case pc > oc:
		return 1
	}

	n := len(p.words)
	if len(other.words) > n {
		n = len(other.words)
	}

	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(p.words) {
			a = p.words[i]
		}

		if i < len(other.words) {
			b = other.words[i]
		}

		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
	}

	return 0
}

// String renders the bitset as a sorted list of its set bit positions.
func (p Set) String() string {
	var b strings.Builder

	b.WriteString("{")

	for i, v := range p.Bits() {
		if i != 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%d", v)
	}

	b.WriteString("}")

	return b.String()
}
