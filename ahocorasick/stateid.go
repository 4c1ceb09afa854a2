// Package ahocorasick implements a multi-pattern, overlap-aware byte
// matcher built from an Aho-Corasick automaton: a trie with failure
// links (the NFA) compiled once into a dense, premultiplied
// transition table (the DFA).
package ahocorasick

// stateID names a state in either the NFA or the DFA. The same three
// low IDs are reserved in both representations.
type stateID uint32

const (
	// failedStateID marks the absence of an explicit trie transition.
	// It never appears in a built DFA.
	failedStateID stateID = 0
	// deadStateID is a sink: every byte loops back to it. Reaching it
	// means no pattern can ever match from here on.
	deadStateID stateID = 1
	// startStateID is the root of the trie.
	startStateID stateID = 2
)

const alphabetLen = 256
