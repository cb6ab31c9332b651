package cmd

import (
	"fmt"
	"io"

	"github.com/mik-tf/mdtodocu/internal/config"
	"github.com/mik-tf/mdtodocu/internal/content"
	"github.com/mik-tf/mdtodocu/internal/lookup"
	"github.com/mik-tf/mdtodocu/internal/materialize"
	"github.com/mik-tf/mdtodocu/internal/outline"
	"github.com/mik-tf/mdtodocu/internal/reconcile"
	"github.com/mik-tf/mdtodocu/internal/report"
	"github.com/spf13/cobra"
)

var (
	convertBooksDir  string
	convertSearchDir string
	convertOutputDir string
	convertIndent    int
)

var convertCmd = &cobra.Command{
	Use:   "convert <book>",
	Short: "Run the full outline-to-tree conversion for one book",
	Long: `Convert parses <books-dir>/<book>/SUMMARY.md, materializes the nested
directory tree under <output-dir>/<book>, then reconciles image assets.
Missing images are logged to the diagnostics log.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("books-dir") {
			cfg.BooksDir = convertBooksDir
		}
		if cmd.Flags().Changed("search-dir") {
			cfg.SearchDir = convertSearchDir
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = convertOutputDir
		}
		if cmd.Flags().Changed("indent") {
			cfg.IndentWidth = convertIndent
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runConvert(cfg, args[0], cmd.OutOrStdout())
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertBooksDir, "books-dir", "", "Directory containing <book>/SUMMARY.md outlines")
	convertCmd.Flags().StringVar(&convertSearchDir, "search-dir", "", "Root searched for source files and images")
	convertCmd.Flags().StringVar(&convertOutputDir, "output-dir", "", "Root the generated tree is written under")
	convertCmd.Flags().IntVar(&convertIndent, "indent", 0, "Whitespace characters per outline nesting level")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cfg config.Config, book string, out io.Writer) error {
	outlinePath := cfg.OutlinePath(book)
	outputPath := cfg.OutputPath(book)

	// Nothing downstream can proceed without the outline.
	nodes, err := outline.Load(outlinePath)
	if err != nil {
		return err
	}

	report.FormatHeader(out, book, outlinePath, cfg.SearchDir, outputPath)
	report.FormatTree(out, outputPath)

	finder := lookup.New(cfg.SearchDir)
	resolver := content.NewResolver(finder, out)

	mat := materialize.New(finder, resolver, cfg.IndentWidth, out)
	stats, err := mat.Run(nodes, outputPath)
	if err != nil {
		return err
	}

	rec := reconcile.New(finder, out)
	missing, err := rec.Run(outputPath)
	if err != nil {
		return err
	}
	if err := reconcile.WriteLog(cfg.LogFile, missing); err != nil {
		return err
	}
	if len(missing) > 0 {
		report.Warnf(out, "%d image(s) could not be found anywhere, see %s", len(missing), cfg.LogFile)
	}

	fmt.Fprintln(out)
	report.FormatTree(out, outputPath)
	report.FormatSummary(out, stats.Written, stats.Skipped, len(missing))
	return nil
}
