// Package langdetect picks which cell-scanner plugin applies to a file,
// using go-enry to classify its content the same way a real formatter
// would pick a language-specific front end.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ScannerKind names one of this repository's concrete CellScanner
// plugins.
type ScannerKind string

const (
	// ScannerNone means no plugin applies; the caller should leave the
	// file untouched.
	ScannerNone ScannerKind = ""
	// ScannerMarkdownTable selects pkg/scanners/mdtable.
	ScannerMarkdownTable ScannerKind = "mdtable"
	// ScannerAssignment selects pkg/scanners/assign.
	ScannerAssignment ScannerKind = "assign"
)

// assignmentLanguages lists go-enry language names whose dominant
// statement shape is "identifier = expression", the pattern
// pkg/scanners/assign targets.
var assignmentLanguages = map[string]bool{
	"Go":         true,
	"Python":     true,
	"YAML":       true,
	"Shell":      true,
	"INI":        true,
	"TOML":       true,
	"JavaScript": true,
	"TypeScript": true,
	"Java":       true,
	"C":          true,
	"C++":        true,
	"Rust":       true,
}

// Select decides which scanner plugin, if any, applies to a file given
// its path and content.
func Select(path string, content []byte) ScannerKind {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		return ScannerMarkdownTable
	}

	if len(content) == 0 {
		return ScannerNone
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return classify(lang)
	}
	for _, lang := range enry.GetLanguagesByExtension(path, content, nil) {
		if k := classify(lang); k != ScannerNone {
			return k
		}
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript", "Java",
		"C", "C++", "Rust", "YAML", "TOML", "INI", "Markdown",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return classify(lang)
	}

	if looksLikeMarkdownTable(content) {
		return ScannerMarkdownTable
	}
	return ScannerNone
}

func classify(lang string) ScannerKind {
	if lang == "Markdown" {
		return ScannerMarkdownTable
	}
	if assignmentLanguages[lang] {
		return ScannerAssignment
	}
	return ScannerNone
}

// looksLikeMarkdownTable is a last-resort heuristic for content too
// short or ambiguous for go-enry's classifier to commit to a verdict:
// any line starting and ending with "|" is almost certainly a pipe
// table row.
func looksLikeMarkdownTable(content []byte) bool {
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) >= 2 && line[0] == '|' && line[len(line)-1] == '|' {
			return true
		}
	}
	return false
}
