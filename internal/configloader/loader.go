// Package configloader resolves tabalign's Config from, in increasing
// precedence: built-in defaults, a project config file, environment
// variables, and explicit CLI flags — the same precedence ladder the
// teacher's own loader climbs, trimmed to the single project-file tier
// this tool needs (no user/system XDG tiers: one project file plus env
// plus flags is enough surface here).
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tpterovtt/tabalign/pkg/config"
)

// ConfigFileName is the project config file this loader searches for,
// starting at the working directory and walking up to the filesystem
// root.
const ConfigFileName = ".tabalign.yml"

// LoadOptions carries the explicit overrides a caller (typically the
// CLI flag parser) wants applied on top of file and environment config.
type LoadOptions struct {
	WorkDir string

	ColumnLimit    *int
	DefaultScanner *config.Scanner
	Write          *bool
	OutputFormat   *string
	Color          *string
}

// LoadResult is the resolved Config plus a trail of where each layer
// came from, useful for --debug output.
type LoadResult struct {
	Config      config.Config
	SourcePath  string // project config file actually used, if any
	Diagnostics []string
}

type fileConfig struct {
	ColumnLimit    *int    `yaml:"column_limit"`
	DefaultScanner *string `yaml:"default_scanner"`
	OutputFormat   *string `yaml:"output_format"`
	Color          *string `yaml:"color"`
}

// Load resolves a Config for opts.WorkDir (the current directory if
// empty), applying the project file, environment variables, and opts in
// that order of increasing precedence.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	cfg := config.Default()
	cfg.ColumnLimit = defaultColumnLimit()

	result := &LoadResult{Config: cfg}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workDir = wd
	}

	path, fc, err := findAndLoadProjectConfig(workDir)
	if err != nil {
		return nil, err
	}
	if fc != nil {
		result.SourcePath = path
		applyFileConfig(&result.Config, fc)
		result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("loaded config from %s", path))
	}

	applyEnv(&result.Config)
	applyOptions(&result.Config, opts)

	return result, nil
}

// findAndLoadProjectConfig walks from dir upward to the filesystem root
// looking for ConfigFileName.
func findAndLoadProjectConfig(dir string) (string, *fileConfig, error) {
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(candidate)
		if err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return "", nil, fmt.Errorf("parse %s: %w", candidate, err)
			}
			return candidate, &fc, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, fmt.Errorf("read %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

func applyFileConfig(cfg *config.Config, fc *fileConfig) {
	if fc.ColumnLimit != nil {
		cfg.ColumnLimit = *fc.ColumnLimit
	}
	if fc.DefaultScanner != nil {
		cfg.DefaultScanner = config.Scanner(*fc.DefaultScanner)
	}
	if fc.OutputFormat != nil {
		cfg.OutputFormat = *fc.OutputFormat
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
}

// envPrefix namespaces every environment override this loader honors.
const envPrefix = "TABALIGN_"

func applyEnv(cfg *config.Config) {
	if v := os.Getenv(envPrefix + "COLUMN_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ColumnLimit = n
		}
	}
	if v := os.Getenv(envPrefix + "SCANNER"); v != "" {
		cfg.DefaultScanner = config.Scanner(strings.ToLower(v))
	}
	if v := os.Getenv(envPrefix + "OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = v
	}
	if v := os.Getenv(envPrefix + "COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = "never"
	}
}

func applyOptions(cfg *config.Config, opts LoadOptions) {
	if opts.ColumnLimit != nil {
		cfg.ColumnLimit = *opts.ColumnLimit
	}
	if opts.DefaultScanner != nil {
		cfg.DefaultScanner = *opts.DefaultScanner
	}
	if opts.Write != nil {
		cfg.Write = *opts.Write
	}
	if opts.OutputFormat != nil {
		cfg.OutputFormat = *opts.OutputFormat
	}
	if opts.Color != nil {
		cfg.Color = *opts.Color
	}
}

// defaultColumnLimit falls back to the terminal width when one is
// available, and a conservative 100 columns otherwise.
func defaultColumnLimit() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}
