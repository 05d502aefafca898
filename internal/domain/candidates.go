package domain

import "math/bits"

// CandidateSet is a bitset over the digits 1..9; bit v-1 stands for digit v.
type CandidateSet uint16

// AllCandidates holds every digit 1..9.
const AllCandidates CandidateSet = 0x1FF

func (s CandidateSet) Has(v uint8) bool {
	return v >= 1 && v <= 9 && s&(1<<(v-1)) != 0
}

func (s CandidateSet) Add(v uint8) CandidateSet {
	if v < 1 || v > 9 {
		return s
	}
	return s | 1<<(v-1)
}

func (s CandidateSet) Remove(v uint8) CandidateSet {
	if v < 1 || v > 9 {
		return s
	}
	return s &^ (1 << (v - 1))
}

func (s CandidateSet) Toggle(v uint8) CandidateSet {
	if v < 1 || v > 9 {
		return s
	}
	return s ^ 1<<(v-1)
}

func (s CandidateSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Single returns the sole member when the set has exactly one.
func (s CandidateSet) Single() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Digits lists the members in ascending order.
func (s CandidateSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
