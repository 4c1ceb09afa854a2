// Command gen-corpus writes a synthetic dictionary and article pair,
// for manual testing and benchmarking of the automaton against
// inputs of a chosen size and alphabet.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

func main() {
	dictOut := flag.String("dict-out", "fixture/dictionary.txt", "path to write the generated dictionary")
	articleOut := flag.String("article-out", "fixture/article.txt", "path to write the generated article")
	patternCount := flag.Int("patterns", 100, "number of dictionary entries to generate")
	patternMaxLen := flag.Int("pattern-max-len", 8, "maximum pattern length")
	lines := flag.Int("lines", 100000, "number of article lines to generate")
	lineLen := flag.Int("line-len", 80, "characters per article line")
	alphabet := flag.String("alphabet", "abcdefghijklmnopqrstuvwxyz", "characters the corpus is drawn from")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if len(*alphabet) == 0 {
		fmt.Fprintln(os.Stderr, "alphabet must not be empty")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	if err := writeDictionary(*dictOut, *patternCount, *patternMaxLen, *alphabet, rng); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dictionary: %v\n", err)
		os.Exit(1)
	}

	if err := writeArticle(*articleOut, *lines, *lineLen, *alphabet, rng); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write article: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d patterns to %s, %d lines to %s\n", *patternCount, *dictOut, *lines, *articleOut)
}

func writeDictionary(path string, count, maxLen int, alphabet string, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for i := 0; i < count; i++ {
		n := 1 + rng.Intn(maxLen)
		for j := 0; j < n; j++ {
			w.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

func writeArticle(path string, lines, lineLen int, alphabet string, rng *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for i := 0; i < lines; i++ {
		for j := 0; j < lineLen; j++ {
			w.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}
