// Package srctext is a minimal line/field tokenizer standing in for the
// lexer the alignment engine itself deliberately leaves out of scope.
// It exists only to drive the core engine and its scanner plugins with
// real byte offsets and line numbers.
package srctext

import (
	"bytes"

	"github.com/tpterovtt/tabalign/pkg/align"
)

// Line is one source line split into whitespace-delimited fields; a ';'
// or ',' that ends a field is split off as a token of its own.
type Line struct {
	Number             int // 1-based
	StartByte, EndByte int

	// Indentation is the line's leading space count, kept out of
	// Tokens[0].Spaces so a scanner's first column never double-counts
	// it as inter-token spacing.
	Indentation int
	Tokens      align.TokenRange
}

// Lines splits src into Lines, preserving each field's leading space
// count and absolute byte offset. Trailing newlines are not part of any
// Line's tokens, and a final "\n" does not start an extra empty Line.
func Lines(src []byte) []Line {
	var lines []Line
	lineNo := 0
	offset := 0
	parts := bytes.Split(src, []byte("\n"))
	if n := len(parts); n > 1 && len(parts[n-1]) == 0 {
		parts = parts[:n-1]
	}
	for _, raw := range parts {
		lineNo++
		start := offset
		indentation, toks := fields(raw, start)
		lines = append(lines, Line{
			Number:      lineNo,
			StartByte:   start,
			EndByte:     start + len(raw),
			Indentation: indentation,
			Tokens:      toks,
		})
		offset += len(raw) + 1 // account for the '\n' consumed by Split
	}
	return lines
}

// fields splits one line's bytes into tokens, tracking each token's
// leading space count and absolute offset within the full source. The
// first token's leading spaces are returned separately as the line's
// indentation rather than folded into its Spaces. A trailing ';' or ','
// becomes its own token with no leading spaces.
func fields(line []byte, base int) (indentation int, toks align.TokenRange) {
	i := 0
	first := true
	for i < len(line) {
		spaces := 0
		for i < len(line) && line[i] == ' ' {
			spaces++
			i++
		}
		start := i
		for i < len(line) && line[i] != ' ' {
			i++
		}
		if i == start {
			break
		}
		if first {
			indentation = spaces
			spaces = 0
			first = false
		}
		end := i
		if end-start > 1 && (line[end-1] == ';' || line[end-1] == ',') {
			end--
		}
		toks = append(toks, align.Token{
			Text:           string(line[start:end]),
			Spaces:         spaces,
			SpacesRequired: spaces,
			ByteOffset:     base + start,
		})
		if end < i {
			toks = append(toks, align.Token{Text: string(line[end:i]), ByteOffset: base + end})
		}
	}
	return indentation, toks
}

// ApplyRowEdits rewrites src by replacing the byte span of each row in
// rows with render(row), and leaves every other byte untouched. rows
// must be in ascending StartByte order and must not overlap, which
// holds for any set of rows drawn from a single BuildRows call.
func ApplyRowEdits(src []byte, rows []*align.RowPartition, render func(*align.RowPartition) string) []byte {
	var out bytes.Buffer
	cursor := 0
	for _, row := range rows {
		if row.StartByte < cursor || row.EndByte < row.StartByte {
			continue
		}
		out.Write(src[cursor:row.StartByte])
		out.WriteString(render(row))
		cursor = row.EndByte
	}
	out.Write(src[cursor:])
	return out.Bytes()
}
