package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	languagesFormat         string
	languagesOutput         string
	languagesDefinitionsDir string
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List all known languages",
	Long:  `List every language in the definitions snapshot with its type, extensions, and aliases.`,
	Run:   runLanguages,
}

func init() {
	setupOutputFlags(languagesCmd, &languagesFormat, &languagesOutput)
	languagesCmd.Flags().StringVar(&languagesDefinitionsDir, "definitions-dir", "", "Directory with additional language definition files")
}

// LanguageInfo holds display information about one language
type LanguageInfo struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Group      string   `json:"group,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
	Filenames  []string `json:"filenames,omitempty"`
	Aliases    []string `json:"aliases,omitempty"`
}

// LanguagesResult is the output for the languages command
type LanguagesResult struct {
	Languages []LanguageInfo `json:"languages"`
	Total     int            `json:"total"`
	ByType    map[string]int `json:"by_type"`
}

func (r *LanguagesResult) ToJSON() interface{} {
	return r
}

func (r *LanguagesResult) ToText(w io.Writer) {
	for _, lang := range r.Languages {
		fmt.Fprintf(w, "%-24s %-12s %v\n", lang.Name, lang.Type, lang.Extensions)
	}
	fmt.Fprintf(w, "\nTotal: %d languages\n", r.Total)
	fmt.Fprintf(w, "By type: programming=%d, data=%d, markup=%d, prose=%d\n",
		r.ByType["programming"], r.ByType["data"],
		r.ByType["markup"], r.ByType["prose"])
}

func runLanguages(cmd *cobra.Command, args []string) {
	_, kb, err := loadKnowledge(languagesDefinitionsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load definitions: %v\n", err)
		os.Exit(1)
	}

	byType := make(map[string]int)
	languages := make([]LanguageInfo, 0, kb.Len())
	for _, lang := range kb.All() {
		languages = append(languages, LanguageInfo{
			Name:       lang.Name,
			Type:       string(lang.Type),
			Group:      lang.Group,
			Extensions: lang.Extensions,
			Filenames:  lang.Filenames,
			Aliases:    lang.Aliases,
		})
		byType[string(lang.Type)]++
	}

	OutputToFile(&LanguagesResult{
		Languages: languages,
		Total:     len(languages),
		ByType:    byType,
	}, languagesFormat, languagesOutput)
}
