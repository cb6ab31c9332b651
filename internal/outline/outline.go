// Package outline parses an indentation-encoded table-of-contents document
// (a SUMMARY.md in the mdBook style) into an ordered list of nodes.
package outline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mik-tf/mdtodocu/internal/fsutil"
)

// Node is one entry of the outline document.
type Node struct {
	// Depth is the raw count of leading whitespace characters on the entry
	// line. The materializer converts it to a nesting level using the
	// configured indent width.
	Depth int

	// Filename is the base name of the referenced content file.
	Filename string

	// Title is the human-readable label for the entry.
	Title string

	// Position is the 1-based line number of the entry in the outline
	// document, counting all lines, matched or not. It doubles as the sort
	// key for the generated site.
	Position int
}

// Stem returns the node's file name without its extension. Descent
// directories in the output tree are named after it.
func (n Node) Stem() string {
	return fsutil.Stem(n.Filename)
}

// entryPattern matches lines like "  - [Title](path/to/file.md)".
var entryPattern = regexp.MustCompile(`^(\s*)- \[(.*?)\]\((.*\.md)\)`)

// Parse scans the outline text and returns its nodes in document order.
// Lines that do not match the entry pattern are skipped without error.
func Parse(content string) []Node {
	var nodes []Node
	for i, line := range strings.Split(content, "\n") {
		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		nodes = append(nodes, Node{
			Depth:    len(m[1]),
			Title:    strings.TrimSpace(m[2]),
			Filename: strings.TrimSpace(filepath.Base(m[3])),
			Position: i + 1,
		})
	}
	return nodes
}

// Load reads and parses the outline document at path. A missing or unreadable
// outline is fatal for the whole run, so the error is returned as-is for the
// caller to abort on.
func Load(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline %s: %w", path, err)
	}
	return Parse(string(data)), nil
}
