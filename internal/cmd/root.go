package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lang-detect",
	Short: "Programming language identification for files and trees",
	Long: `lang-detect identifies the programming language of source files using
filename rules, shebang lines, extensions, editor modelines, content
heuristics, and a statistical classifier for the ambiguous rest.

It can resolve a single file or aggregate per-language statistics over a
whole directory tree, honoring vendor and generated-code exclusion rules.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
