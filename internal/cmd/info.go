package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about languages and definitions",
	Long:  `Display information about the known languages, disambiguation rules, and the definitions snapshot in effect.`,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.AddCommand(languagesCmd)
	infoCmd.AddCommand(definitionsCmd)
}
