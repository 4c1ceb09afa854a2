// Command bench compares the automaton-based matcher against the
// naive reference scanner on a dictionary/article pair.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"corasweep/ahocorasick"
	"corasweep/dictfile"
	"corasweep/internal/naive"
)

func main() {
	dictPath := flag.String("dict", "fixture/dictionary.txt", "path to dictionary file")
	articlePath := flag.String("article", "fixture/article.txt", "path to article file")
	iterations := flag.Int("n", 1, "number of iterations")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file (automaton scan only)")
	flag.Parse()

	dictData, err := os.ReadFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read dictionary: %v\n", err)
		os.Exit(1)
	}
	patterns, err := dictfile.Parse(dictData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse dictionary: %v\n", err)
		os.Exit(1)
	}

	article, err := os.ReadFile(*articlePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read article: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scanning %d bytes against %d patterns, %d iterations\n\n", len(article), len(patterns), *iterations)

	naiveTime, naiveCounts := benchNaive(patterns, article, *iterations)
	automatonTime, automatonCounts := benchAutomaton(patterns, article, *iterations, *cpuprofile)

	if !countsEqual(naiveCounts, automatonCounts) {
		fmt.Fprintln(os.Stderr, "warning: naive and automaton counts disagree")
	}

	fmt.Printf("naive:     %v  (%.2f MB/s)\n",
		naiveTime, float64(len(article))/naiveTime.Seconds()/1024/1024)
	fmt.Printf("automaton: %v  (%.2f MB/s)\n",
		automatonTime, float64(len(article))/automatonTime.Seconds()/1024/1024)
	fmt.Printf("speedup:   %.2fx\n", float64(naiveTime)/float64(automatonTime))
}

func benchNaive(patterns [][]byte, article []byte, iterations int) (time.Duration, []uint64) {
	var last []uint64
	start := time.Now()
	for i := 0; i < iterations; i++ {
		last = naive.Count(patterns, article)
	}
	return time.Since(start) / time.Duration(iterations), last
}

func benchAutomaton(patterns [][]byte, article []byte, iterations int, cpuprofile string) (time.Duration, []uint64) {
	ac := ahocorasick.NewBuilder().Build(patterns)

	scan := func() []uint64 {
		counts := make([]uint64, len(patterns))
		it := ac.NewOverlappingIter(article)
		for {
			m, ok := it.Next()
			if !ok {
				break
			}
			counts[m.Pattern()]++
		}
		return counts
	}

	// Warm up
	for i := 0; i < 3; i++ {
		scan()
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	var last []uint64
	start := time.Now()
	for i := 0; i < iterations; i++ {
		last = scan()
	}
	elapsed := time.Since(start)

	return elapsed / time.Duration(iterations), last
}

func countsEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
