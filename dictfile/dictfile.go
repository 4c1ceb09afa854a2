// Package dictfile parses the dictionary file: one pattern per line,
// lines starting with '#' treated as comments. Order and duplicate
// entries are preserved exactly as written.
package dictfile

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var dictLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Pattern", Pattern: `[^\n]+`},
	{Name: "Newline", Pattern: `\r?\n`},
})

// file is the top-level grammar node: a dictionary is a sequence of
// lines, each either a comment or a pattern.
type file struct {
	Lines []*line `parser:"@@*"`
}

type line struct {
	Comment *string `parser:"( @Comment"`
	Pattern *string `parser:"| @Pattern )? Newline?"`
}

var dictParser = participle.MustBuild[file](
	participle.Lexer(dictLexer),
	participle.UseLookahead(2),
)

// Parse reads dictionary bytes and returns the ordered pattern list,
// duplicates included. Comment and blank lines are dropped; a blank
// line carries no pattern, matching the "empty patterns are
// unsupported" contract rather than emitting one.
func Parse(data []byte) ([][]byte, error) {
	f, err := dictParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("dictfile: %w", err)
	}

	patterns := make([][]byte, 0, len(f.Lines))
	for _, l := range f.Lines {
		if l.Pattern == nil {
			continue
		}
		patterns = append(patterns, []byte(*l.Pattern))
	}
	return patterns, nil
}
