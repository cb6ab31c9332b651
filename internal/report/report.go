// Package report renders the tool's terminal output.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for recoverable problems
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// errorStyle for fatal problems
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the run summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// headerBoxStyle for the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	// dirStyle for directory names in tree output
	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)
)

// FormatHeader renders the run header with the resolved paths.
func FormatHeader(w io.Writer, book, outlinePath, searchDir, outputDir string) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %s",
		dimStyle.Render("Book:"), titleStyle.Render(book),
		dimStyle.Render("Outline:"), outlinePath,
		dimStyle.Render("Search:"), searchDir,
		dimStyle.Render("Output:"), outputDir,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// Copied reports a finished source-to-destination write.
func Copied(w io.Writer, src, dst string) {
	fmt.Fprintf(w, "%s %s %s %s\n",
		successStyle.Render("✓"), src, dimStyle.Render("->"), dst)
}

// Warnf reports a recoverable problem. Processing continues.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnStyle.Render("Warning:"), fmt.Sprintf(format, args...))
}

// Errorf reports a fatal problem.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), fmt.Sprintf(format, args...))
}

// FormatSummary renders the end-of-run summary box.
func FormatSummary(w io.Writer, written, skipped, missing int) {
	line := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Written:"), written,
		dimStyle.Render("Skipped:"), skipped,
		dimStyle.Render("Missing images:"), missing,
	)
	var status string
	if skipped == 0 && missing == 0 {
		status = successStyle.Render("OK")
	} else {
		status = warnStyle.Render("INCOMPLETE")
	}
	content := titleStyle.Render("Conversion Complete") + "\n" + line + "  " + status
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatTree renders the directory tree rooted at dir. Unreadable entries are
// silently omitted.
func FormatTree(w io.Writer, dir string) {
	fmt.Fprintln(w, dirStyle.Render(filepath.Base(dir)+"/"))
	printTree(w, dir, "")
}

func printTree(w io.Writer, dir, prefix string) {
	// os.ReadDir returns entries sorted by name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for i, entry := range entries {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(entries)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		if entry.IsDir() {
			fmt.Fprintf(w, "%s%s\n", dimStyle.Render(prefix+connector), dirStyle.Render(entry.Name()+"/"))
			printTree(w, filepath.Join(dir, entry.Name()), childPrefix)
		} else {
			fmt.Fprintf(w, "%s%s\n", dimStyle.Render(prefix+connector), entry.Name())
		}
	}
}
