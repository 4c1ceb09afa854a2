// Package naive implements an O(|patterns|*|haystack|) reference
// scanner, used to check the automaton-based matcher against brute
// force in property tests and in the bench command.
package naive

import "bytes"

// Count returns, for each pattern, the number of offsets i in
// [0, len(haystack)-len(pattern)] such that haystack[i:i+len(pattern)]
// equals pattern. Overlapping occurrences are all counted.
func Count(patterns [][]byte, haystack []byte) []uint64 {
	counts := make([]uint64, len(patterns))
	for i, p := range patterns {
		if len(p) == 0 {
			continue
		}
		rest := haystack
		base := 0
		for {
			idx := bytes.Index(rest, p)
			if idx < 0 {
				break
			}
			counts[i]++
			base += idx + 1
			rest = haystack[base:]
		}
	}
	return counts
}
