package chunk

import (
	"bufio"
	"bytes"
	"io"
)

// DefaultLineLimit is the number of lines a single chunk holds before
// Reader yields it, chosen empirically for throughput.
const DefaultLineLimit = 10000

// Reader pulls line-aligned byte buffers from an underlying stream,
// one chunk at a time. A chunk never splits a line, so no pattern can
// span a chunk boundary so long as it does not itself span a newline.
type Reader struct {
	src       *bufio.Reader
	lineLimit int
	pending   bytes.Buffer
	err       error
}

// NewReader wraps src with the default line limit.
func NewReader(src io.Reader) *Reader {
	return NewReaderSize(src, DefaultLineLimit)
}

// NewReaderSize wraps src with a caller-chosen line limit.
func NewReaderSize(src io.Reader, lineLimit int) *Reader {
	return &Reader{src: bufio.NewReaderSize(src, 1<<20), lineLimit: lineLimit}
}

// Next returns the next chunk of up to lineLimit complete lines,
// terminators included. It returns ok == false once the stream is
// exhausted with no pending bytes, or once a read error has occurred;
// Err distinguishes the two.
func (r *Reader) Next() (chunk []byte, ok bool) {
	if r.err != nil {
		return nil, false
	}

	r.pending.Reset()
	lines := 0
	for lines < r.lineLimit {
		line, err := r.src.ReadBytes('\n')
		if len(line) > 0 {
			r.pending.Write(line)
			lines++
		}
		if err != nil {
			if err != io.EOF {
				r.err = err
			}
			break
		}
	}

	if r.pending.Len() == 0 {
		return nil, false
	}

	out := make([]byte, r.pending.Len())
	copy(out, r.pending.Bytes())
	return out, true
}

// Err returns the first read error encountered, if any. Once Err is
// non-nil, Next always returns ok == false.
func (r *Reader) Err() error { return r.err }
