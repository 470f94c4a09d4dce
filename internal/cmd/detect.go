package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
	"github.com/petrarca/language-detector/internal/strategy"
	"github.com/petrarca/language-detector/internal/types"
	"github.com/spf13/cobra"
)

var (
	detectFormat         string
	detectOutput         string
	detectFallback       bool
	detectDefinitionsDir string
)

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Identify the language of a single file",
	Long: `Detect resolves the programming language of one file using the full
strategy pipeline: filename rules, shebang, extension, modelines, content
heuristics, and the statistical classifier.

Examples:
  lang-detect detect main.py
  lang-detect detect --fallback unknown.xyz
  lang-detect detect -f text src/parser.h`,
	Args: cobra.ExactArgs(1),
	Run:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	setupOutputFlags(detectCmd, &detectFormat, &detectOutput)
	detectCmd.Flags().BoolVar(&detectFallback, "fallback", false, "Fall back to go-enry when no language matches")
	detectCmd.Flags().StringVar(&detectDefinitionsDir, "definitions-dir", "", "Directory with additional language definition files")
}

// DetectResult is the output of the detect command
type DetectResult struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Type     string `json:"type,omitempty"`
	Group    string `json:"group,omitempty"`
	// Source is "rules" for the strategy pipeline, "fallback" for go-enry
	Source string `json:"source"`
}

func (r *DetectResult) ToJSON() interface{} {
	return r
}

func (r *DetectResult) ToText(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", styleHeading.Render(r.Path+":"), r.Language)
	if r.Type != "" {
		fmt.Fprintf(w, "  type: %s\n", r.Type)
	}
	if r.Group != "" {
		fmt.Fprintf(w, "  group: %s\n", r.Group)
	}
	if r.Source != "rules" {
		fmt.Fprintln(w, styleMuted.Render("  resolved via "+r.Source))
	}
}

func runDetect(cmd *cobra.Command, args []string) {
	filePath := args[0]

	content, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", filePath, err)
		os.Exit(1)
	}

	_, kb, err := loadKnowledge(detectDefinitionsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load definitions: %v\n", err)
		os.Exit(1)
	}

	file := &strategy.FileInfo{Path: filepath.Base(filePath), Content: content}
	pipeline := strategy.NewPipeline(kb, nil)

	lang, err := pipeline.Identify(file)
	switch {
	case err == nil:
		OutputToFile(&DetectResult{
			Path:     filePath,
			Language: lang.Name,
			Type:     string(lang.Type),
			Group:    lang.Group,
			Source:   "rules",
		}, detectFormat, detectOutput)

	case errors.Is(err, types.ErrNoMatch) && detectFallback:
		name := enry.GetLanguage(filepath.Base(filePath), content)
		if name == "" {
			fmt.Fprintf(os.Stderr, "No language match for %s\n", filePath)
			os.Exit(1)
		}
		OutputToFile(&DetectResult{
			Path:     filePath,
			Language: name,
			Type:     enryTypeName(enry.GetLanguageType(name)),
			Source:   "fallback",
		}, detectFormat, detectOutput)

	case errors.Is(err, types.ErrNoMatch):
		fmt.Fprintf(os.Stderr, "No language match for %s\n", filePath)
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "Failed to identify %s: %v\n", filePath, err)
		os.Exit(1)
	}
}

// enryTypeName maps a go-enry language type onto our type vocabulary
func enryTypeName(t enry.Type) string {
	switch t {
	case enry.Programming:
		return "programming"
	case enry.Markup:
		return "markup"
	case enry.Data:
		return "data"
	case enry.Prose:
		return "prose"
	}
	return ""
}
