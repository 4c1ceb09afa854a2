package ahocorasick

// dfa is the flat, premultiplied transition table that the scanning
// driver actually walks. It is built once from an nfa and never
// mutated afterwards.
type dfa struct {
	trans         []stateID // len == alphabetLen * stateCount, premultiplied
	matches       [][]pattern
	startID       stateID // premultiplied
	maxMatchID    stateID // premultiplied
	stateCount    int
	maxPatternLen int
}

func (d *dfa) isMatch(s stateID) bool { return s > d.startID && s <= d.maxMatchID }

func (d *dfa) isDead(s stateID) bool { return s == deadStateID }

// next returns the state reached from s on byte b. s must already be
// premultiplied; the result is premultiplied too.
func (d *dfa) next(s stateID, b byte) stateID {
	return d.trans[int(s)+int(b)]
}

// newDFA runs the three fixed phases from spec section 4.2: resolve
// every fail-sentinel transition with memoised failure-chain walks,
// shuffle match states into a contiguous low-id range, then
// premultiply every destination by the alphabet size.
func newDFA(n *nfa) *dfa {
	d := &dfa{
		stateCount:    len(n.states),
		maxPatternLen: n.maxPatternLen,
	}
	d.trans = make([]stateID, alphabetLen*d.stateCount)
	d.matches = make([][]pattern, d.stateCount)

	for s := range n.states {
		d.matches[s] = n.states[s].matches
	}

	d.resolveTransitions(n)
	d.shuffleMatchStates()
	d.premultiply()
	return d
}

// resolveTransitions fills every row with an explicit destination,
// building states in ascending id order so that a failure-chain walk
// can be short-circuited the instant it reaches an already-resolved
// row (spec section 9, "Memoised NFA->DFA transition resolution").
func (d *dfa) resolveTransitions(n *nfa) {
	for s := 0; s < d.stateCount; s++ {
		row := d.trans[s*alphabetLen : s*alphabetLen+alphabetLen]
		for b := 0; b < alphabetLen; b++ {
			if next := n.states[s].trans.nextState(byte(b)); next != failedStateID {
				row[b] = next
				continue
			}
			row[b] = d.resolveMemoized(n, stateID(s), byte(b))
		}
	}
}

// resolveMemoized walks the failure chain from fail(s) looking for an
// explicit NFA transition on b. Any state along the walk with id < s
// already has a fully resolved DFA row, so the walk stops there and
// borrows that row's answer directly instead of recomputing it.
func (d *dfa) resolveMemoized(n *nfa, s stateID, b byte) stateID {
	f := n.states[s].fail
	for {
		if int(f) < int(s) {
			return d.trans[int(f)*alphabetLen+int(b)]
		}
		if next := n.states[f].trans.nextState(b); next != failedStateID {
			return next
		}
		if f == startStateID {
			return startStateID
		}
		f = n.states[f].fail
	}
}

// shuffleMatchStates permutes state ids, leaving the three reserved
// ids untouched, so that every match state occupies an id in
// (startStateID, maxMatchID] and every non-match state occupies an id
// above maxMatchID. The permutation is applied to every row's
// destinations and to the start id.
func (d *dfa) shuffleMatchStates() {
	swaps := make([]stateID, d.stateCount)
	for i := range swaps {
		swaps[i] = stateID(i)
	}

	firstNonMatch := 3
	nextFromEnd := d.stateCount - 1
	for firstNonMatch <= nextFromEnd {
		if len(d.matches[firstNonMatch]) > 0 {
			firstNonMatch++
			continue
		}
		for nextFromEnd > firstNonMatch && len(d.matches[nextFromEnd]) == 0 {
			nextFromEnd--
		}
		if nextFromEnd <= firstNonMatch {
			break
		}
		swaps[firstNonMatch], swaps[nextFromEnd] = stateID(nextFromEnd), stateID(firstNonMatch)
		firstNonMatch++
		nextFromEnd--
	}

	maxMatch := stateID(firstNonMatch - 1)

	oldTrans := d.trans
	oldMatches := d.matches
	d.trans = make([]stateID, len(oldTrans))
	d.matches = make([][]pattern, d.stateCount)

	inverse := make([]stateID, d.stateCount)
	for oldID, newID := range swaps {
		inverse[newID] = stateID(oldID)
	}

	for newID := 0; newID < d.stateCount; newID++ {
		oldID := inverse[newID]
		d.matches[newID] = oldMatches[oldID]
		srcRow := oldTrans[int(oldID)*alphabetLen : int(oldID)*alphabetLen+alphabetLen]
		dstRow := d.trans[newID*alphabetLen : newID*alphabetLen+alphabetLen]
		for b := 0; b < alphabetLen; b++ {
			dstRow[b] = swaps[srcRow[b]]
		}
	}

	d.startID = swaps[startStateID]
	d.maxMatchID = maxMatch
}

// premultiply scales every non-dead destination, the start id, and
// max_match by the alphabet size, so that scanning reduces to
// table[state+byte]. It must run exactly once, after the shuffle.
func (d *dfa) premultiply() {
	for i, s := range d.trans {
		if s != deadStateID {
			d.trans[i] = s * alphabetLen
		}
	}
	d.startID *= alphabetLen
	d.maxMatchID *= alphabetLen
}
