package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/petrarca/language-detector/internal/aggregator"
	"github.com/petrarca/language-detector/internal/config"
	"github.com/petrarca/language-detector/internal/pathfilter"
	"github.com/petrarca/language-detector/internal/progress"
	"github.com/petrarca/language-detector/internal/provider"
	"github.com/spf13/cobra"
)

var (
	settings *config.Settings

	analyzeFormat         string
	analyzeDefinitionsDir string
	analyzeGroupRollup    bool
	analyzeNoLicenses     bool
	analyzeVerbose        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Aggregate per-language statistics over a directory tree",
	Long: `Analyze walks a directory tree, identifies the language of every file,
and aggregates byte, line, and file counts per language. Vendored,
generated, and documentation paths are excluded from the statistics but
reported in a separate bucket, as are files no language could be
determined for.

Examples:
  lang-detect analyze /path/to/project
  lang-detect analyze --exclude "**/testdata/**" .
  lang-detect analyze -f text --group-rollup .`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	settings = config.LoadSettings()

	setupFormatFlag(analyzeCmd, &analyzeFormat)
	analyzeCmd.Flags().StringVarP(&settings.OutputFile, "output", "o", settings.OutputFile, "Output file path (default: stdout)")
	analyzeCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Glob patterns to exclude (can be specified multiple times)")
	analyzeCmd.Flags().IntVar(&settings.Workers, "workers", settings.Workers, "Number of parallel workers (default: number of CPUs)")
	analyzeCmd.Flags().BoolVar(&settings.NoCodeStats, "no-code-stats", settings.NoCodeStats, "Disable code statistics (code, comment, and blank line counts)")
	analyzeCmd.Flags().BoolVar(&settings.NoGitInfo, "no-git", settings.NoGitInfo, "Skip git repository information")
	analyzeCmd.Flags().BoolVar(&analyzeNoLicenses, "no-licenses", false, "Skip license detection")
	analyzeCmd.Flags().BoolVar(&analyzeGroupRollup, "group-rollup", false, "Fold member languages into their group")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Show per-file progress on stderr")
	analyzeCmd.Flags().StringVar(&analyzeDefinitionsDir, "definitions-dir", "", "Directory with additional language definition files")

	analyzeCmd.Flags().String("log-level", settings.LogLevel.String(), "Log level: debug, info, warn, error")
	analyzeCmd.Flags().String("log-format", settings.LogFormat, "Log format: text or json")
	analyzeCmd.Flags().String("log-file", settings.LogFile, "Log file path (default: stderr)")
}

// configureLogging sets up the logger from command flags
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	settings.ApplyLogFlags(logLevel, logFormat, logFile)

	logger, err := settings.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	return logger
}

// ReportOutput wraps an aggregate report for the unified output path
type ReportOutput struct {
	report *aggregator.Report
}

func (r *ReportOutput) ToJSON() interface{} {
	return r.report
}

func (r *ReportOutput) ToText(w io.Writer) {
	meta := r.report.Metadata
	if meta != nil {
		fmt.Fprintln(w, styleHeading.Render("Analysis of "+meta.ScanPath))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%-20s %12s %10s %7s\n", "Language", "Bytes", "Lines", "Files")
	for _, stat := range r.report.Sorted() {
		fmt.Fprintf(w, "%-20s %12d %10d %7d\n", stat.Language, stat.Bytes, stat.Lines, stat.Files)
	}
	if r.report.Unknown.Files > 0 {
		fmt.Fprintf(w, "%-20s %12d %10s %7d\n", "(unknown)", r.report.Unknown.Bytes, "-", r.report.Unknown.Files)
	}
	if r.report.Excluded.Files > 0 {
		fmt.Fprintln(w, styleMuted.Render(fmt.Sprintf("%-20s %12d %10s %7d", "(excluded)", r.report.Excluded.Bytes, "-", r.report.Excluded.Files)))
	}

	if r.report.Git != nil {
		fmt.Fprintf(w, "\nGit: %s @ %s", r.report.Git.Branch, r.report.Git.Commit)
		if r.report.Git.IsDirty {
			fmt.Fprint(w, " (dirty)")
		}
		fmt.Fprintln(w)
	}
	if len(r.report.Licenses) > 0 {
		fmt.Fprintf(w, "Licenses: %s\n", strings.Join(r.report.Licenses, ", "))
	}
	if meta != nil {
		fmt.Fprintf(w, "\n%d files, %d languages in %dms\n", meta.FileCount, meta.LanguageCount, meta.DurationMs)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) {
	logger := configureLogging(cmd)

	path := "."
	if len(args) > 0 {
		path = strings.TrimSpace(args[0])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Error("Invalid path", "error", err)
		os.Exit(1)
	}
	fileInfo, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		logger.Error("Path does not exist", "path", absPath)
		os.Exit(1)
	}
	if err == nil && !fileInfo.IsDir() {
		logger.Error("Path is a file, use 'lang-detect detect' for single files", "path", absPath)
		os.Exit(1)
	}

	// Per-tree config from .lang-detect.yml, CLI flags win where they overlap
	cfg, err := config.Load(absPath)
	if err != nil {
		logger.Error("Failed to load configuration", "path", absPath, "error", err)
		os.Exit(1)
	}
	excludes := cfg.MergeExcludes(settings.ExcludePatterns)
	definitionsDir := analyzeDefinitionsDir
	if definitionsDir == "" {
		definitionsDir = cfg.DefinitionsDir
	}
	groupRollup := analyzeGroupRollup || cfg.GroupRollup

	payload, kb, err := loadKnowledge(definitionsDir)
	if err != nil {
		logger.Error("Failed to load definitions", "error", err)
		os.Exit(1)
	}

	filter, err := pathfilter.New(payload.PathRules, excludes)
	if err != nil {
		logger.Error("Failed to build path filter", "error", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Analyzing: %s\n", absPath)
	logger.Debug("Initializing analyzer",
		"path", absPath,
		"exclude_patterns", excludes,
		"workers", settings.Workers,
		"code_stats", !settings.NoCodeStats)

	analyzer := aggregator.New(kb, filter, provider.NewFSProvider(absPath), logger, aggregator.Options{
		Workers:            settings.Workers,
		CodeStats:          !settings.NoCodeStats,
		GitInfo:            !settings.NoGitInfo,
		Licenses:           !analyzeNoLicenses,
		GroupRollup:        groupRollup,
		DefinitionsVersion: payload.Version,
		Properties:         cfg.Properties,
	})
	analyzer.SetProgress(progress.New(analyzeVerbose, nil))

	report, err := analyzer.Analyze(context.Background())
	if err != nil {
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}

	// -o - means stdout
	if settings.OutputFile == "-" {
		settings.OutputFile = ""
	}
	OutputToFile(&ReportOutput{report: report}, analyzeFormat, settings.OutputFile)
}
