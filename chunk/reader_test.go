package chunk

import (
	"strings"
	"testing"
)

func TestReader_SplitsOnLineLimit(t *testing.T) {
	input := "a\nb\nc\nd\ne\n"
	r := NewReaderSize(strings.NewReader(input), 2)

	var chunks [][]byte
	for {
		c, ok := r.Next()
		if !ok {
			break
		}
		chunks = append(chunks, c)
	}

	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if string(chunks[0]) != "a\nb\n" || string(chunks[1]) != "c\nd\n" || string(chunks[2]) != "e\n" {
		t.Fatalf("unexpected chunk contents: %q", chunks)
	}
}

func TestReader_NoTrailingNewline(t *testing.T) {
	r := NewReaderSize(strings.NewReader("a\nb"), 10)

	c, ok := r.Next()
	if !ok {
		t.Fatal("expected one chunk")
	}
	if string(c) != "a\nb" {
		t.Fatalf("got %q, want %q", c, "a\nb")
	}

	if _, ok := r.Next(); ok {
		t.Fatal("expected no further chunks")
	}
}

func TestReader_EmptyInput(t *testing.T) {
	r := NewReaderSize(strings.NewReader(""), 10)
	if _, ok := r.Next(); ok {
		t.Fatal("expected no chunks from empty input")
	}
	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
}

func TestReader_CRLFTerminators(t *testing.T) {
	r := NewReaderSize(strings.NewReader("a\r\nb\r\n"), 10)
	c, ok := r.Next()
	if !ok {
		t.Fatal("expected one chunk")
	}
	if string(c) != "a\r\nb\r\n" {
		t.Fatalf("got %q", c)
	}
}

func TestReader_ReconstitutesWholeInput(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 25000; i++ {
		sb.WriteString("x\n")
	}
	input := sb.String()

	r := NewReader(strings.NewReader(input))
	var got strings.Builder
	chunks := 0
	for {
		c, ok := r.Next()
		if !ok {
			break
		}
		got.Write(c)
		chunks++
	}
	if got.String() != input {
		t.Fatal("reassembled chunks do not match original input")
	}
	if chunks != 3 {
		t.Fatalf("got %d chunks, want 3 (25000 lines / 10000 line limit)", chunks)
	}
}
