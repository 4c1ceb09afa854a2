package ahocorasick

// Match reports one occurrence of a dictionary pattern in a scanned
// haystack. End is the offset one past the last matching byte; Start
// is derived from End and the pattern's length rather than stored
// directly.
type Match struct {
	pattern int
	length  int
	end     int
}

// Pattern returns the dictionary index of the matched entry.
func (m Match) Pattern() int { return m.pattern }

// Start returns the offset of the first matching byte.
func (m Match) Start() int { return m.end - m.length }

// End returns the offset one past the last matching byte.
func (m Match) End() int { return m.end }

// scanState is the caller-owned cursor that makes both scans
// resumable: a state id, a byte offset into the haystack, and (for
// the overlapping scan) a match-index cursor into the current state's
// match list.
type scanState struct {
	state  stateID
	at     int
	cursor int
}

// standardFindAt advances single-byte transitions from s.state at
// s.at until either the haystack is exhausted, the dead state is
// reached, or a match state is reached. On a match it returns the
// first match tuple at that state and leaves s.at positioned one past
// the matched byte, ready for the caller to resume past it.
func standardFindAt(d *dfa, s *scanState, haystack []byte) (Match, bool) {
	state := s.state
	at := s.at
	for at < len(haystack) {
		state = d.next(state, haystack[at])
		at++
		if d.isDead(state) {
			s.state, s.at = state, at
			return Match{}, false
		}
		if d.isMatch(state) {
			s.state, s.at = state, at
			p := d.matches[state/alphabetLen][0]
			return Match{pattern: p.index, length: p.length, end: at}, true
		}
	}
	s.state, s.at = state, at
	return Match{}, false
}

// overlappingFindAt first drains any remaining match tuples at the
// current state without consuming input, then falls back to a
// standard scan. This is what makes overlapping matches (one pattern
// ending where another also ends at the same offset, or the state's
// own duplicate entries) all observable from a single pass.
func overlappingFindAt(d *dfa, s *scanState, haystack []byte) (Match, bool) {
	if d.isMatch(s.state) {
		ms := d.matches[s.state/alphabetLen]
		if s.cursor < len(ms) {
			p := ms[s.cursor]
			s.cursor++
			return Match{pattern: p.index, length: p.length, end: s.at}, true
		}
	}
	s.cursor = 0
	m, ok := standardFindAt(d, s, haystack)
	if ok {
		s.cursor = 1
	}
	return m, ok
}

// Iter pulls one match at a time from a haystack, lazily, until the
// haystack is exhausted.
type Iter interface {
	Next() (Match, bool)
}

type standardIter struct {
	d        *dfa
	haystack []byte
	s        scanState
}

func (it *standardIter) Next() (Match, bool) {
	it.s.state = it.d.startID
	return standardFindAt(it.d, &it.s, it.haystack)
}

type overlappingIter struct {
	d        *dfa
	haystack []byte
	s        scanState
}

func (it *overlappingIter) Next() (Match, bool) {
	return overlappingFindAt(it.d, &it.s, it.haystack)
}
