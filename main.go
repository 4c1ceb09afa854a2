// Command corasweep counts, for each entry of a dictionary file, the
// number of overlapping occurrences of that entry in an article file.
package main

import (
	"flag"
	"fmt"
	"os"

	"corasweep/ahocorasick"
	"corasweep/chunk"
	"corasweep/dictfile"
	"corasweep/dispatch"
)

const version = "0.1.0"

func main() {
	help := flag.Bool("help", false, "print usage and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <dictionary> <article>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}
	if *showVersion {
		fmt.Println(version)
		return
	}

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	dictPath := flag.Arg(0)
	articlePath := flag.Arg(1)

	dictData, err := os.ReadFile(dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading dictionary: %v\n", err)
		os.Exit(1)
	}

	patterns, err := dictfile.Parse(dictData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing dictionary: %v\n", err)
		os.Exit(1)
	}

	ac := ahocorasick.NewBuilder().Build(patterns)

	r, closer, err := chunk.OpenFile(articlePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening article: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	reader := chunk.NewReader(r)
	counters := dispatch.NewCounters(len(patterns))
	dispatch.Run(ac, counters, reader)

	if err := reader.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading article: %v\n", err)
		os.Exit(1)
	}

	for _, count := range counters.Snapshot() {
		fmt.Println(count)
	}
}
