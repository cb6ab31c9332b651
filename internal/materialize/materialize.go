// Package materialize walks the parsed outline and writes the nested output
// tree: one directory per interior node, grouping metadata per directory,
// resolved content per file, and copied image assets alongside.
package materialize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mik-tf/mdtodocu/internal/content"
	"github.com/mik-tf/mdtodocu/internal/fsutil"
	"github.com/mik-tf/mdtodocu/internal/lookup"
	"github.com/mik-tf/mdtodocu/internal/outline"
	"github.com/mik-tf/mdtodocu/internal/report"
)

// Materializer turns an ordered node sequence into a physical directory tree.
type Materializer struct {
	finder      *lookup.Finder
	resolver    *content.Resolver
	indentWidth int
	out         io.Writer
}

// Stats summarizes one materialization pass.
type Stats struct {
	Written int
	Skipped int
}

// New creates a Materializer. indentWidth is the whitespace count that
// encodes one outline nesting level. Progress and warnings go to out.
func New(finder *lookup.Finder, resolver *content.Resolver, indentWidth int, out io.Writer) *Materializer {
	return &Materializer{
		finder:      finder,
		resolver:    resolver,
		indentWidth: indentWidth,
		out:         out,
	}
}

// Run processes the nodes strictly in outline order, threading a single
// directory cursor across the whole pass. Missing source files, includes and
// images are warned about and skipped; filesystem write failures and
// structural outline errors abort the run.
func (m *Materializer) Run(nodes []outline.Node, outputDir string) (Stats, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("creating output root: %w", err)
	}

	hasChildren := m.markChildren(nodes)
	cur := cursor{root: outputDir}
	var stats Stats

	for i, node := range nodes {
		level := node.Depth / m.indentWidth

		switch {
		case level > cur.level():
			if i == 0 {
				report.Warnf(m.out, "outline starts indented at %q, treating it as top-level", node.Filename)
				break
			}
			if level > cur.level()+1 {
				report.Warnf(m.out, "%q skips %d levels, clamping to one", node.Filename, level-cur.level())
			}
			// Descend into a directory named after the previous node; that
			// node is the group this one belongs to.
			prev := nodes[i-1]
			if err := writeCategory(filepath.Join(cur.path(), prev.Stem()), prev.Title, prev.Position); err != nil {
				return stats, err
			}
			cur.push(prev.Stem())
		case level < cur.level():
			if err := cur.pop(cur.level() - level); err != nil {
				return stats, fmt.Errorf("at %q (line %d): %w", node.Filename, node.Position, err)
			}
		}

		src, ok := m.finder.Find(node.Filename)
		if !ok {
			report.Warnf(m.out, "source file %q not found, skipping", node.Filename)
			stats.Skipped++
			continue
		}

		destDir := cur.path()
		if hasChildren[i] {
			// An interior node's own file lives inside its own directory,
			// next to its children.
			destDir = filepath.Join(destDir, node.Stem())
			if err := writeCategory(destDir, node.Title, node.Position); err != nil {
				return stats, err
			}
		}
		dest := filepath.Join(destDir, node.Filename)

		raw, err := os.ReadFile(src)
		if err != nil {
			report.Warnf(m.out, "reading %s: %v, skipping", src, err)
			stats.Skipped++
			continue
		}

		resolved := m.resolver.Resolve(string(raw))
		page := frontmatter(node.Title, node.Position) + resolved
		if err := os.WriteFile(dest, []byte(page), 0o644); err != nil {
			return stats, fmt.Errorf("writing %s: %w", dest, err)
		}
		report.Copied(m.out, src, dest)
		stats.Written++

		if refs := content.ExtractImages(resolved); len(refs) > 0 {
			if err := m.copyImages(dest, src, refs); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

// markChildren flags each node whose immediate successor sits one or more
// levels deeper.
func (m *Materializer) markChildren(nodes []outline.Node) []bool {
	flags := make([]bool, len(nodes))
	for i := 0; i+1 < len(nodes); i++ {
		if nodes[i+1].Depth/m.indentWidth > nodes[i].Depth/m.indentWidth {
			flags[i] = true
		}
	}
	return flags
}

// copyImages copies every referenced image into the img directory next to
// dest. The source file's own directory is searched first, then the whole
// search root. Missing images are warned about and left to the reconciler.
func (m *Materializer) copyImages(dest, src string, refs []string) error {
	imgDir := filepath.Join(filepath.Dir(dest), "img")
	if err := os.MkdirAll(imgDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", imgDir, err)
	}

	srcDir := filepath.Dir(src)
	for _, ref := range refs {
		name := filepath.Base(ref)

		path, ok := m.finder.FindImageIn(srcDir, name)
		if !ok {
			path, ok = m.finder.FindImage(name)
		}
		if !ok {
			report.Warnf(m.out, "image %q not found in source tree, skipping", name)
			continue
		}

		target := filepath.Join(imgDir, filepath.Base(path))
		if fsutil.SameFile(path, target) {
			continue
		}
		if err := fsutil.CopyFile(path, target); err != nil {
			return err
		}
	}
	return nil
}
