package reporter

import (
	"bufio"
	"context"
	"encoding/json"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's alignment groups.
type JSONFileResult struct {
	Path   string      `json:"path"`
	Groups []JSONGroup `json:"groups"`
	Error  string      `json:"error,omitempty"`
}

// JSONGroup represents one candidate group's outcome.
type JSONGroup struct {
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	Rows      int    `json:"rows"`
	Aligned   bool   `json:"aligned"`
	Reason    string `json:"reason,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	GroupsAligned   int `json:"groupsAligned"`
	GroupsAbstained int `json:"groupsAbstained"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	out := JSONOutput{
		Summary: JSONSummary{FilesChecked: len(result.Files)},
	}

	for _, file := range result.Files {
		fr := JSONFileResult{Path: file.Path}
		if file.Error != nil {
			fr.Error = file.Error.Error()
			out.Files = append(out.Files, fr)
			continue
		}

		for _, g := range file.Report.Groups {
			jg := JSONGroup{Rows: len(g.Rows), Aligned: g.Aligned()}
			if len(g.Rows) > 0 {
				jg.StartLine = g.Rows[0].StartLine
				jg.EndLine = g.Rows[len(g.Rows)-1].EndLine
			}
			if !jg.Aligned {
				jg.Reason = g.Reason.String()
				out.Summary.GroupsAbstained++
			} else {
				out.Summary.GroupsAligned++
			}
			fr.Groups = append(fr.Groups, jg)
		}
		out.Files = append(out.Files, fr)
	}

	enc := json.NewEncoder(r.bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return 0, err
	}

	return out.Summary.GroupsAbstained, nil
}
