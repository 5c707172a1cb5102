// Package mdtable implements align.CellScanner for GitHub-flavored
// Markdown pipe tables, using goldmark's table extension to locate each
// table's line span in the source and this package's own cell
// splitter to turn each line into columns.
package mdtable

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	talign "github.com/tpterovtt/tabalign/pkg/align"
)

// NodeKind tags every row this package builds.
const NodeKind = "mdtable-row"

var parser = goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()

// BuildRows parses src as Markdown and returns one synthetic root per
// pipe table found, in document order, each with one leaf RowPartition
// child per row line (the header included, the "---|---" delimiter
// line excluded — it carries no cell content of its own).
func BuildRows(src []byte) []*talign.RowPartition {
	doc := parser.Parse(text.NewReader(src))

	var roots []*talign.RowPartition
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		table, ok := n.(*east.Table)
		if !ok {
			return ast.WalkContinue, nil
		}
		roots = append(roots, rowsFromTable(table, src))
		return ast.WalkSkipChildren, nil
	})
	return roots
}

// rowsFromTable builds one leaf RowPartition per non-delimiter line in
// table.Lines(). Line numbers are counted from the start of src; a
// skipped delimiter line extends the preceding row's EndLine, so the
// header is not separated from the body rows by a line-number gap.
func rowsFromTable(table *east.Table, src []byte) *talign.RowPartition {
	root := &talign.RowPartition{}
	lines := table.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		raw := seg.Value(src)
		lineNo := bytes.Count(src[:seg.Start], []byte("\n")) + 1
		if isDelimiterRow(raw) {
			if n := len(root.Children); n > 0 {
				root.Children[n-1].EndLine = lineNo
			}
			continue
		}
		cells, indentation := splitCells(raw, seg.Start)
		if len(cells) == 0 {
			continue
		}
		root.Children = append(root.Children, &talign.RowPartition{
			Tokens:      cells,
			NodeKind:    NodeKind,
			StartLine:   lineNo,
			EndLine:     lineNo,
			StartByte:   seg.Start,
			EndByte:     seg.Stop,
			Indentation: indentation,
		})
	}
	return root
}

// isDelimiterRow reports whether raw is a table header separator line
// such as "|---|:--:|---|".
func isDelimiterRow(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	for _, b := range trimmed {
		switch b {
		case '-', ':', '|', ' ':
		default:
			return false
		}
	}
	return bytes.ContainsRune(trimmed, '-')
}

// splitCells turns one pipe-delimited line into a cell per column,
// dropping the empty leading/trailing fields a leading/trailing "|"
// produces, and returns the whitespace preceding the first "|" as the
// row's indentation. lineStart is raw's absolute offset in the full
// source, used to give each cell's token an absolute ByteOffset.
func splitCells(raw []byte, lineStart int) (talign.TokenRange, int) {
	line := strings.TrimRight(string(raw), "\r\n")
	indentation := len(line) - len(strings.TrimLeft(line, " \t"))

	fields := strings.Split(line, "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}

	var toks talign.TokenRange
	offset := 0
	for i, f := range fields {
		trimmed := strings.TrimLeft(f, " \t")
		leadingSpaces := len(f) - len(trimmed)
		trimmed = strings.TrimRight(trimmed, " \t")
		spaces := 1
		if i == 0 {
			spaces = 0
		}
		toks = append(toks, talign.Token{
			Text:           trimmed,
			Spaces:         spaces,
			SpacesRequired: spaces,
			ByteOffset:     lineStart + offset + leadingSpaces,
		})
		offset += len(f) + 1 // +1 for the separating "|"
	}
	return toks, indentation
}
