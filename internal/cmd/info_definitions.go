package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var (
	definitionsFormat string
	definitionsOutput string
	definitionsDir    string
)

var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Show the definitions snapshot in effect",
	Long:  `Show the version and contents of the language definitions: language count, disambiguated extensions, path rules, and token tables.`,
	Run:   runDefinitions,
}

func init() {
	setupOutputFlags(definitionsCmd, &definitionsFormat, &definitionsOutput)
	definitionsCmd.Flags().StringVar(&definitionsDir, "definitions-dir", "", "Directory with additional language definition files")
}

// DefinitionsResult is the output for the definitions command
type DefinitionsResult struct {
	Version                 string   `json:"version"`
	Languages               int      `json:"languages"`
	DisambiguatedExtensions []string `json:"disambiguated_extensions"`
	PathRules               int      `json:"path_rules"`
	TokenTables             int      `json:"token_tables"`
}

func (r *DefinitionsResult) ToJSON() interface{} {
	return r
}

func (r *DefinitionsResult) ToText(w io.Writer) {
	fmt.Fprintln(w, styleHeading.Render("Definitions "+r.Version))
	fmt.Fprintf(w, "Languages:    %d\n", r.Languages)
	fmt.Fprintf(w, "Path rules:   %d\n", r.PathRules)
	fmt.Fprintf(w, "Token tables: %d\n", r.TokenTables)
	fmt.Fprintf(w, "Disambiguated extensions: %v\n", r.DisambiguatedExtensions)
}

func runDefinitions(cmd *cobra.Command, args []string) {
	payload, _, err := loadKnowledge(definitionsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load definitions: %v\n", err)
		os.Exit(1)
	}

	extensions := make([]string, 0, len(payload.Disambiguations))
	for _, d := range payload.Disambiguations {
		extensions = append(extensions, d.Extensions...)
	}
	sort.Strings(extensions)

	OutputToFile(&DefinitionsResult{
		Version:                 payload.Version,
		Languages:               len(payload.Languages),
		DisambiguatedExtensions: extensions,
		PathRules:               len(payload.PathRules),
		TokenTables:             len(payload.TokenTables),
	}, definitionsFormat, definitionsOutput)
}
