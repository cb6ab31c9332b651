// Package content transforms raw markdown text before it is written to the
// output tree: include macros are expanded, then image references are
// rewritten to the canonical ./img/ location.
package content

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mik-tf/mdtodocu/internal/lookup"
	"github.com/mik-tf/mdtodocu/internal/report"
)

// Ext is the content-file extension appended to bare include targets.
const Ext = ".md"

// maxIncludeDepth fixes include expansion at a single pass: spliced text is
// never rescanned, so nested includes do not expand and cannot cycle.
const maxIncludeDepth = 1

// includePattern matches the wiki include macro in its three forms:
// page:'collection:file', page:'file', and page:file.
var includePattern = regexp.MustCompile(`!!wiki\.include page:(?:'([^':]+):([^']+)'|'([^']+)'|(\S+))`)

// Resolver expands include macros against a search root and rewrites image
// references. Missed lookups are reported and left verbatim.
type Resolver struct {
	finder *lookup.Finder
	out    io.Writer
}

// NewResolver creates a Resolver using finder for all file lookups. Warnings
// are written to out.
func NewResolver(finder *lookup.Finder, out io.Writer) *Resolver {
	return &Resolver{finder: finder, out: out}
}

// Resolve applies both transforms in order: includes first, so spliced text
// gets its image references rewritten too.
func (r *Resolver) Resolve(text string) string {
	for i := 0; i < maxIncludeDepth; i++ {
		text = r.ExpandIncludes(text)
	}
	return RewriteImages(text)
}

// ExpandIncludes replaces every include macro with the full text of its
// target file. A macro whose target cannot be found or read stays in the
// output unchanged.
func (r *Resolver) ExpandIncludes(text string) string {
	return includePattern.ReplaceAllStringFunc(text, func(macro string) string {
		collection, name := parseIncludeRef(macro)
		if !strings.HasSuffix(name, Ext) {
			name += Ext
		}

		var path string
		var ok bool
		if collection != "" {
			path, ok = r.finder.FindIn(filepath.Join(r.finder.Root(), collection), name)
		} else {
			path, ok = r.finder.Find(name)
		}
		if !ok {
			if collection != "" {
				report.Warnf(r.out, "included file %q not found in collection %q, keeping macro", name, collection)
			} else {
				report.Warnf(r.out, "included file %q not found, keeping macro", name)
			}
			return macro
		}

		data, err := os.ReadFile(path)
		if err != nil {
			report.Warnf(r.out, "reading included file %s: %v, keeping macro", path, err)
			return macro
		}
		return string(data)
	})
}

// parseIncludeRef pulls the optional collection and the file name out of a
// matched macro.
func parseIncludeRef(macro string) (collection, name string) {
	m := includePattern.FindStringSubmatch(macro)
	switch {
	case m[1] != "" && m[2] != "":
		return m[1], m[2]
	case m[3] != "":
		return "", m[3]
	default:
		return "", m[4]
	}
}
