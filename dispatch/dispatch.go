// Package dispatch feeds chunks of an article into a shared
// automaton across a bounded worker pool and accumulates per-pattern
// match counts atomically.
package dispatch

import (
	"runtime"
	"sync"
	"sync/atomic"

	"corasweep/ahocorasick"
)

// Counters is an ordered table of 64-bit atomic counters, one per
// dictionary entry, matching dictionary order on construction.
type Counters struct {
	counts []atomic.Uint64
}

// NewCounters allocates n zeroed counters.
func NewCounters(n int) *Counters {
	return &Counters{counts: make([]atomic.Uint64, n)}
}

// Add atomically increments the counter at pattern index i.
func (c *Counters) Add(i int) {
	c.counts[i].Add(1)
}

// Snapshot returns the current counter values in dictionary order.
// It does not itself synchronize with in-flight increments; callers
// must call it only after all workers have finished.
func (c *Counters) Snapshot() []uint64 {
	out := make([]uint64, len(c.counts))
	for i := range c.counts {
		out[i] = c.counts[i].Load()
	}
	return out
}

// ChunkSource yields successive byte buffers until exhausted. It
// matches the pull shape of chunk.Reader without depending on that
// package directly, so dispatch can be driven by any lazy producer.
type ChunkSource interface {
	Next() ([]byte, bool)
}

// Run drains source, handing each chunk to a worker in a pool sized
// to the platform's CPU count. Each worker scans its chunk with the
// overlapping driver, starting from the automaton's start state and
// an empty match cursor, and atomically increments counters for
// every match it reports. Run blocks until every dispatched chunk has
// been scanned.
func Run(ac *ahocorasick.AhoCorasick, counters *Counters, source ChunkSource) {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	chunks := make(chan []byte, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for chunk := range chunks {
				scanChunk(ac, counters, chunk)
			}
		}()
	}

	for {
		c, ok := source.Next()
		if !ok {
			break
		}
		chunks <- c
	}
	close(chunks)
	wg.Wait()
}

func scanChunk(ac *ahocorasick.AhoCorasick, counters *Counters, chunk []byte) {
	it := ac.NewOverlappingIter(chunk)
	for {
		m, ok := it.Next()
		if !ok {
			return
		}
		counters.Add(m.Pattern())
	}
}
