package ahocorasick

import "testing"

func countOverlapping(ac *AhoCorasick, haystack []byte, n int) []int {
	counts := make([]int, n)
	it := ac.NewOverlappingIter(haystack)
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		counts[m.Pattern()]++
	}
	return counts
}

func TestOverlapping_Ushers(t *testing.T) {
	patterns := []string{"he", "she", "his", "hers"}
	ac := NewBuilder().BuildStrings(patterns)
	got := countOverlapping(ac, []byte("ushers"), len(patterns))
	want := []int{1, 1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %q: got %d, want %d", patterns[i], got[i], want[i])
		}
	}
}

func TestOverlapping_DuplicatePatternsReportEqualCounts(t *testing.T) {
	patterns := []string{"text", "text"}
	ac := NewBuilder().BuildStrings(patterns)
	got := countOverlapping(ac, []byte("textext"), len(patterns))
	if got[0] != 2 || got[1] != 2 {
		t.Fatalf("got %v, want [2 2]", got)
	}
}

func TestOverlapping_SelfOverlappingPatterns(t *testing.T) {
	patterns := []string{"a", "aa", "aaa"}
	ac := NewBuilder().BuildStrings(patterns)
	got := countOverlapping(ac, []byte("aaaa"), len(patterns))
	want := []int{4, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pattern %q: got %d, want %d", patterns[i], got[i], want[i])
		}
	}
}

func TestOverlapping_AdjacentPatterns(t *testing.T) {
	patterns := []string{"ab", "bc"}
	ac := NewBuilder().BuildStrings(patterns)
	got := countOverlapping(ac, []byte("abc"), len(patterns))
	if got[0] != 1 || got[1] != 1 {
		t.Fatalf("got %v, want [1 1]", got)
	}
}

func TestOverlapping_EmptyHaystack(t *testing.T) {
	patterns := []string{"cat", "dog"}
	ac := NewBuilder().BuildStrings(patterns)
	got := countOverlapping(ac, []byte(""), len(patterns))
	if got[0] != 0 || got[1] != 0 {
		t.Fatalf("got %v, want [0 0]", got)
	}
}

func TestStandard_NonOverlappingResume(t *testing.T) {
	ac := NewBuilder().BuildStrings([]string{"aa"})
	haystack := []byte("aaaa")
	it := ac.NewStandardIter(haystack)

	var ends []int
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		ends = append(ends, m.End())
	}
	if len(ends) != 2 || ends[0] != 2 || ends[1] != 4 {
		t.Fatalf("got %v, want [2 4]", ends)
	}
}

func TestBuild_EmptyPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty pattern")
		}
	}()
	NewBuilder().BuildStrings([]string{"ok", ""})
}

func TestMatch_StartDerivedFromEndAndLength(t *testing.T) {
	ac := NewBuilder().BuildStrings([]string{"she"})
	it := ac.NewOverlappingIter([]byte("ushered"))
	m, ok := it.Next()
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start() != 1 || m.End() != 4 {
		t.Fatalf("got start=%d end=%d, want start=1 end=4", m.Start(), m.End())
	}
}
