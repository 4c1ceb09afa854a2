package ahocorasick

// denseDepth bounds how many trie levels get a full 256-entry
// transition table. Only the first two levels are ever hit on every
// input byte; deeper states are reached only after a partial pattern
// match, so they use a sorted sparse list instead.
const denseDepth = 2

// pattern records which dictionary entry, and what length, ends at a
// state after failure-link match propagation.
type pattern struct {
	index  int
	length int
}

type transitions struct {
	dense  []stateID // nil for sparse states
	sparse []sparseEntry
}

type sparseEntry struct {
	b byte
	s stateID
}

func (t *transitions) nextState(b byte) stateID {
	if t.dense != nil {
		return t.dense[b]
	}
	lo, hi := 0, len(t.sparse)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.sparse[mid].b < b {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.sparse) && t.sparse[lo].b == b {
		return t.sparse[lo].s
	}
	return failedStateID
}

func (t *transitions) setNextState(b byte, next stateID) {
	if t.dense != nil {
		t.dense[b] = next
		return
	}
	lo, hi := 0, len(t.sparse)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.sparse[mid].b < b {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.sparse) && t.sparse[lo].b == b {
		t.sparse[lo].s = next
		return
	}
	t.sparse = append(t.sparse, sparseEntry{})
	copy(t.sparse[lo+1:], t.sparse[lo:])
	t.sparse[lo] = sparseEntry{b: b, s: next}
}

// forEach visits every (byte, stateID) transition that isn't the
// fail sentinel, in byte order.
func (t *transitions) forEach(f func(b byte, s stateID)) {
	if t.dense != nil {
		for b := 0; b < alphabetLen; b++ {
			if t.dense[b] != failedStateID {
				f(byte(b), t.dense[b])
			}
		}
		return
	}
	for _, e := range t.sparse {
		f(e.b, e.s)
	}
}

type nfaState struct {
	trans   transitions
	fail    stateID
	matches []pattern
	depth   int
}

func (s *nfaState) isMatch() bool { return len(s.matches) > 0 }

// nfa is the trie-plus-failure-links intermediate form built once
// from the pattern set, then consumed by newDFA. It is never scanned
// directly.
type nfa struct {
	states        []nfaState
	maxPatternLen int
}

func (n *nfa) state(id stateID) *nfaState { return &n.states[id] }

func (n *nfa) addState(depth int) stateID {
	id := stateID(len(n.states))
	var trans transitions
	if depth < denseDepth {
		trans.dense = make([]stateID, alphabetLen)
	}
	n.states = append(n.states, nfaState{trans: trans, fail: startStateID, depth: depth})
	return id
}

// buildNFA runs the fixed construction phases from spec section 4.1:
// reserve fail/dead/start, build the trie, complete the start and
// dead states, then compute failure links with match propagation.
func buildNFA(patterns [][]byte) *nfa {
	n := &nfa{}
	n.addState(0) // failedStateID, never entered
	n.addState(0) // deadStateID
	n.addState(0) // startStateID

	n.buildTrie(patterns)
	n.addStartStateLoop()
	n.addDeadStateLoop()
	n.fillFailureLinks()
	return n
}

func (n *nfa) buildTrie(patterns [][]byte) {
	for pati, pat := range patterns {
		if len(pat) > n.maxPatternLen {
			n.maxPatternLen = len(pat)
		}

		prev := startStateID
		for depth, b := range pat {
			next := n.state(prev).trans.nextState(b)
			if next == failedStateID {
				next = n.addState(depth + 1)
				n.state(prev).trans.setNextState(b, next)
			}
			prev = next
		}
		n.state(prev).matches = append(n.state(prev).matches, pattern{index: pati, length: len(pat)})
	}
}

func (n *nfa) addStartStateLoop() {
	start := n.state(startStateID)
	for b := 0; b < alphabetLen; b++ {
		if start.trans.nextState(byte(b)) == failedStateID {
			start.trans.setNextState(byte(b), startStateID)
		}
	}
}

func (n *nfa) addDeadStateLoop() {
	dead := n.state(deadStateID)
	for b := 0; b < alphabetLen; b++ {
		dead.trans.setNextState(byte(b), deadStateID)
	}
}

// fillFailureLinks computes fail(s) for every state reachable from
// the start by breadth-first traversal, and propagates match lists
// along the failure chain as each state is discovered.
func (n *nfa) fillFailureLinks() {
	queue := make([]stateID, 0, len(n.states))
	n.state(startStateID).trans.forEach(func(b byte, s stateID) {
		if s != startStateID {
			queue = append(queue, s)
		}
	})

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		var children []byte
		var childIDs []stateID
		n.state(id).trans.forEach(func(b byte, s stateID) {
			children = append(children, b)
			childIDs = append(childIDs, s)
		})

		for i, b := range children {
			child := childIDs[i]
			queue = append(queue, child)

			fail := n.state(id).fail
			for n.state(fail).trans.nextState(b) == failedStateID {
				fail = n.state(fail).fail
			}
			fail = n.state(fail).trans.nextState(b)
			n.state(child).fail = fail
			n.copyMatches(fail, child)
		}
		n.copyMatches(startStateID, id)
	}
}

// copyMatches appends src's match list to dst's. Duplicate dictionary
// entries are appended verbatim wherever the propagation reaches them
// more than once: every duplicate ends up with an equal final count
// (spec section 9, "Open question").
func (n *nfa) copyMatches(src, dst stateID) {
	if src == dst || len(n.states[src].matches) == 0 {
		return
	}
	n.states[dst].matches = append(n.states[dst].matches, n.states[src].matches...)
}
