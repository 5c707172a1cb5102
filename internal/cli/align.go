package cli

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tpterovtt/tabalign/internal/configloader"
	"github.com/tpterovtt/tabalign/internal/logging"
	"github.com/tpterovtt/tabalign/pkg/align"
	"github.com/tpterovtt/tabalign/pkg/config"
	"github.com/tpterovtt/tabalign/pkg/fsutil"
	"github.com/tpterovtt/tabalign/pkg/langdetect"
	"github.com/tpterovtt/tabalign/pkg/reporter"
	"github.com/tpterovtt/tabalign/pkg/scanners/assign"
	"github.com/tpterovtt/tabalign/pkg/scanners/mdtable"
	"github.com/tpterovtt/tabalign/pkg/srctext"
)

type alignFlags struct {
	format      string
	write       bool
	strict      bool
	columnLimit int
	scanner     string
}

func newAlignCommand(configPath, color *string) *cobra.Command {
	flags := &alignFlags{}

	cmd := &cobra.Command{
		Use:   "align [paths...]",
		Short: "Align columns of assignments and markdown tables",
		Long:  alignLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, args, flags, configPath, color)
		},
	}

	addAlignFlags(cmd, flags)

	return cmd
}

const alignLongDescription = `Align columns of repeated syntax: assignment statements and markdown
pipe tables.

By default, aligns every file under the current directory that
langdetect recognizes, and prints a report of what could not be
aligned. Pass --write to rewrite files in place.

Examples:
  tabalign align                 # report on the current directory
  tabalign align config.go       # report on one file
  tabalign align --write README.md
  tabalign align --format json .`

func addAlignFlags(cmd *cobra.Command, flags *alignFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "table", "output format: text, table, json")
	cmd.Flags().BoolVar(&flags.write, "write", false, "also rewrite aligned files in place")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero if any group could not be aligned")
	cmd.Flags().IntVar(&flags.columnLimit, "column-limit", 0, "max rendered row width, 0 uses the configured default")
	cmd.Flags().StringVar(&flags.scanner, "scanner", "", "force a scanner instead of detecting one: assign, mdtable")
}

func runAlign(cmd *cobra.Command, args []string, flags *alignFlags, configPath, color *string) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadOpts := configloader.LoadOptions{Write: &flags.write}
	if *configPath != "" {
		loadOpts.WorkDir = filepath.Dir(*configPath)
	}
	if flags.columnLimit > 0 {
		loadOpts.ColumnLimit = &flags.columnLimit
	}
	if flags.format != "" {
		loadOpts.OutputFormat = &flags.format
	}
	loadOpts.Color = color

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	finalCfg := loadResult.Config

	for _, diag := range loadResult.Diagnostics {
		logger.Debug(diag)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := discoverFiles(paths)
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	result := &reporter.Result{}
	for _, path := range files {
		result.Files = append(result.Files, alignFile(ctx, path, &finalCfg, flags))
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      reporter.Format(finalCfg.OutputFormat),
		Color:       finalCfg.Color,
		ShowSummary: true,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	abstained, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if abstained > 0 && flags.strict {
		return fmt.Errorf("%d group(s) could not be aligned: %w", abstained, ErrAbstained)
	}

	return nil
}

// alignFile runs the appropriate scanner against one file and,
// if --write was given, rewrites it in place when anything changed.
func alignFile(ctx context.Context, path string, cfg *config.Config, flags *alignFlags) reporter.FileReport {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return reporter.FileReport{Path: path, Error: err}
	}

	kind := resolveScannerKind(path, content, flags.scanner)
	if kind == langdetect.ScannerNone && cfg.DefaultScanner != config.ScannerAuto {
		kind = resolveScannerKind(path, content, string(cfg.DefaultScanner))
	}
	switch kind {
	case langdetect.ScannerAssignment:
		return alignAssignFile(ctx, path, content, cfg)
	case langdetect.ScannerMarkdownTable:
		return alignMDTableFile(ctx, path, content, cfg)
	default:
		return reporter.FileReport{Path: path}
	}
}

func resolveScannerKind(path string, content []byte, forced string) langdetect.ScannerKind {
	switch forced {
	case "assign":
		return langdetect.ScannerAssignment
	case "mdtable":
		return langdetect.ScannerMarkdownTable
	default:
		return langdetect.Select(path, content)
	}
}

func alignAssignFile(ctx context.Context, path string, content []byte, cfg *config.Config) reporter.FileReport {
	root := assign.BuildRows(content)
	report := align.TabularAlignTokens(root, assign.Scanner{}, nil, content, nil, cfg.ColumnLimit)

	if cfg.Write && reportHasAlignedRows(report) {
		rewritten := srctext.ApplyRowEdits(content, root.Children, assign.Render)
		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, rewritten, 0); err != nil {
			return reporter.FileReport{Path: path, Error: err}
		}
	}

	return reporter.FileReport{Path: path, Report: report}
}

func alignMDTableFile(ctx context.Context, path string, content []byte, cfg *config.Config) reporter.FileReport {
	roots := mdtable.BuildRows(content)

	merged := reporter.FileReport{Path: path}
	rewritten := content
	for _, root := range roots {
		report := align.TabularAlignTokens(root, mdtable.Scanner{}, nil, rewritten, nil, cfg.ColumnLimit)
		merged.Report.Groups = append(merged.Report.Groups, report.Groups...)
		if cfg.Write && reportHasAlignedRows(report) {
			rewritten = srctext.ApplyRowEdits(rewritten, root.Children, mdtable.Render)
		}
	}

	if cfg.Write && !bytes.Equal(rewritten, content) {
		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, rewritten, 0); err != nil {
			return reporter.FileReport{Path: path, Error: err}
		}
	}

	return merged
}

func reportHasAlignedRows(report align.Report) bool {
	for _, g := range report.Groups {
		if g.Aligned() {
			return true
		}
	}
	return false
}

// discoverFiles walks paths and returns every file found, skipping
// hidden directories; which scanner applies is decided per file later.
func discoverFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() != "." && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
