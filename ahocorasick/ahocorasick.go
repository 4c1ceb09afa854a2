package ahocorasick

import "fmt"

// AhoCorasick is a compiled, read-only multi-pattern matcher. The
// zero value is not usable; build one with Builder.
type AhoCorasick struct {
	d *dfa
}

// PatternCount returns the number of patterns the matcher was built
// from, duplicates included.
func (ac *AhoCorasick) PatternCount() int {
	count := 0
	for _, ms := range ac.d.matches {
		for _, p := range ms {
			if p.index+1 > count {
				count = p.index + 1
			}
		}
	}
	return count
}

// MaxPatternLen returns the length, in bytes, of the longest pattern
// the matcher was built from.
func (ac *AhoCorasick) MaxPatternLen() int { return ac.d.maxPatternLen }

// NewStandardIter returns an iterator over non-overlapping matches in
// haystack: each call to Next resumes scanning where the previous
// match left off.
func (ac *AhoCorasick) NewStandardIter(haystack []byte) Iter {
	return &standardIter{d: ac.d, haystack: haystack, s: scanState{state: ac.d.startID}}
}

// NewOverlappingIter returns an iterator over every overlapping match
// in haystack, including matches that end at the same offset as
// another match or as a duplicate dictionary entry.
func (ac *AhoCorasick) NewOverlappingIter(haystack []byte) Iter {
	return &overlappingIter{d: ac.d, haystack: haystack, s: scanState{state: ac.d.startID}}
}

// Builder compiles a pattern set into an AhoCorasick matcher. A
// Builder holds no state, so one Builder may serve several calls to
// Build.
type Builder struct{}

// NewBuilder returns a Builder with default settings.
func NewBuilder() *Builder { return &Builder{} }

// Build compiles patterns, in order, into an AhoCorasick matcher.
// Patterns must be non-empty; an empty pattern is a programmer error
// (the empty pattern has no defined match semantics) and Build
// panics rather than silently accepting it.
func (b *Builder) Build(patterns [][]byte) *AhoCorasick {
	for i, p := range patterns {
		if len(p) == 0 {
			panic(fmt.Sprintf("ahocorasick: pattern %d is empty", i))
		}
	}
	n := buildNFA(patterns)
	return &AhoCorasick{d: newDFA(n)}
}

// BuildStrings is a convenience wrapper around Build for callers
// holding patterns as strings rather than byte slices.
func (b *Builder) BuildStrings(patterns []string) *AhoCorasick {
	bs := make([][]byte, len(patterns))
	for i, p := range patterns {
		bs[i] = unsafeBytes(p)
	}
	return b.Build(bs)
}
