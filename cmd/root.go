package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mik-tf/mdtodocu/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdtodocu",
	Short: "Convert a SUMMARY.md outline into a Docusaurus directory tree",
	Long: `mdtodocu turns a flat, indentation-encoded SUMMARY.md outline into a nested
directory tree of markdown files ready for a Docusaurus site: one directory
per interior entry with a _category_.json descriptor, frontmatter headers on
every page, !!wiki.include macros expanded, and image references rewritten to
./img/ with the assets copied alongside.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("mdtodocu %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
