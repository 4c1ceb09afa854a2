package ahocorasick

import "testing"

func TestNFA_DenseOnlyBelowDepthTwo(t *testing.T) {
	n := buildNFA([][]byte{[]byte("abcd")})
	for id := stateID(3); int(id) < len(n.states); id++ {
		st := n.state(id)
		isDense := st.trans.dense != nil
		wantDense := st.depth < denseDepth
		if isDense != wantDense {
			t.Errorf("state %d depth %d: dense=%v, want %v", id, st.depth, isDense, wantDense)
		}
	}
}

func TestNFA_FailureChainReachesStart(t *testing.T) {
	n := buildNFA([][]byte{[]byte("he"), []byte("she"), []byte("his"), []byte("hers")})
	for id := stateID(3); int(id) < len(n.states); id++ {
		seen := map[stateID]bool{}
		f := id
		for f != startStateID {
			if seen[f] {
				t.Fatalf("failure chain from state %d cycles without reaching start", id)
			}
			seen[f] = true
			f = n.state(f).fail
		}
	}
}

func TestNFA_StartSelfLoopOnUnknownBytes(t *testing.T) {
	n := buildNFA([][]byte{[]byte("a")})
	start := n.state(startStateID)
	if start.trans.nextState('z') != startStateID {
		t.Fatalf("expected start to self-loop on an unmatched byte")
	}
}

func TestNFA_MatchPropagationAcrossFailureLinks(t *testing.T) {
	// "she" and "he" share a suffix: the state after "she" must carry
	// both patterns via failure-link propagation.
	n := buildNFA([][]byte{[]byte("he"), []byte("she")})

	var sheEnd stateID
	cur := startStateID
	for _, b := range []byte("she") {
		cur = n.state(cur).trans.nextState(b)
	}
	sheEnd = cur

	if !n.state(sheEnd).isMatch() {
		t.Fatal("expected the state after \"she\" to be a match state")
	}
	if len(n.state(sheEnd).matches) != 2 {
		t.Fatalf("expected 2 propagated matches at end of \"she\", got %d", len(n.state(sheEnd).matches))
	}
}
