// Package reconcile is the safety net after materialization: it re-reads the
// written tree, re-extracts every image reference, and makes sure each image
// actually exists next to the file that references it.
package reconcile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mik-tf/mdtodocu/internal/content"
	"github.com/mik-tf/mdtodocu/internal/fsutil"
	"github.com/mik-tf/mdtodocu/internal/lookup"
	"github.com/mik-tf/mdtodocu/internal/report"
)

// Reconciler verifies and repairs image asset placement in an output tree.
type Reconciler struct {
	finder *lookup.Finder
	out    io.Writer
}

// New creates a Reconciler that relocates missing images via finder.
func New(finder *lookup.Finder, out io.Writer) *Reconciler {
	return &Reconciler{finder: finder, out: out}
}

// Run scans every written content file under outputDir. Images absent from
// the adjacent img directory are re-located under the search root and copied
// in; images that cannot be found anywhere are returned, deduplicated, in
// first-seen order. Running twice over unchanged output changes nothing the
// second time.
func (r *Reconciler) Run(outputDir string) ([]string, error) {
	var missing []string
	seen := make(map[string]bool)

	err := filepath.WalkDir(outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), content.Ext) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		imgDir := filepath.Join(filepath.Dir(path), "img")
		for _, ref := range content.ExtractImages(string(data)) {
			name := filepath.Base(ref)
			target := filepath.Join(imgDir, name)
			if _, err := os.Stat(target); err == nil {
				continue
			}

			src, ok := r.finder.FindImage(name)
			if !ok {
				if !seen[name] {
					seen[name] = true
					missing = append(missing, name)
				}
				report.Warnf(r.out, "image %q referenced by %s cannot be found", name, path)
				continue
			}

			if err := os.MkdirAll(imgDir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", imgDir, err)
			}
			if err := fsutil.CopyFile(src, target); err != nil {
				return err
			}
			report.Copied(r.out, src, target)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return missing, nil
}

// WriteLog persists the missing image names, one line each, to path. When
// nothing is missing, no log is produced and a stale one is removed so the
// log always reflects the latest run.
func WriteLog(path string, missing []string) error {
	if len(missing) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	var b strings.Builder
	for _, name := range missing {
		fmt.Fprintf(&b, "Image %q cannot be found.\n", name)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
