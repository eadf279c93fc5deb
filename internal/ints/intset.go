// Package ints implements a fixed-capacity set of small non-negative integers.
// Used by langdef to represent NFA node sets during determinization.
package ints

import (
	"math/bits"
	"strconv"
	"strings"
)

const wordShift = 5 + (^uint(0) >> 32 & 1)
const wordSize = 1 << wordShift

// Set holds items in range [0, capacity). Capacity is fixed at creation.
type Set struct {
	words []uint
}

// NewSet creates an empty set able to hold items 0 .. capacity-1.
func NewSet(capacity int) *Set {
	return &Set{make([]uint, (capacity+wordSize-1)>>wordShift)}
}

func (s *Set) Add(item int) *Set {
	s.words[item>>wordShift] |= 1 << (uint(item) & (wordSize - 1))
	return s
}

func (s *Set) Contains(item int) bool {
	index := item >> wordShift
	if index < 0 || index >= len(s.words) {
		return false
	}
	return s.words[index]&(1<<(uint(item)&(wordSize-1))) != 0
}

func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

func (s *Set) Len() int {
	cnt := 0
	for _, w := range s.words {
		cnt += bits.OnesCount(w)
	}
	return cnt
}

func (s *Set) Copy() *Set {
	words := make([]uint, len(s.words))
	copy(words, s.words)
	return &Set{words}
}

// Union adds all items of t to s. Both sets must share the same capacity.
func (s *Set) Union(t *Set) *Set {
	for i, w := range t.words {
		s.words[i] |= w
	}
	return s
}

func (s *Set) IsEqual(t *Set) bool {
	if len(s.words) != len(t.words) {
		return false
	}
	for i, w := range s.words {
		if w != t.words[i] {
			return false
		}
	}
	return true
}

// ToSlice returns the items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	for i, w := range s.words {
		base := i << wordShift
		for w != 0 {
			result = append(result, base+bits.TrailingZeros(w))
			w &= w - 1
		}
	}
	return result
}

// Key returns a canonical string representation, equal for equal sets
// of the same capacity. Suitable as a map key for set deduplication.
func (s *Set) Key() string {
	var b strings.Builder
	for _, item := range s.ToSlice() {
		b.WriteString(strconv.Itoa(item))
		b.WriteByte('.')
	}
	return b.String()
}
