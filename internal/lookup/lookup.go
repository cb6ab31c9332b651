// Package lookup locates content files and images anywhere under a search
// root. Lookups are case-insensitive and never mutate the filesystem.
package lookup

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheSize bounds the memoized lookups. Books reference the same include
// targets and images many times over, so hits dominate after warm-up.
const cacheSize = 512

// imageExts are the extensions accepted for an image lookup in addition to
// the requested name's own extension. Handles .jpg vs .jpeg drift in sources.
var imageExts = []string{".jpg", ".jpeg", ".png"}

// Finder answers "where does this file live?" queries under a fixed root.
type Finder struct {
	root  string
	cache *lru.Cache[string, string]
}

// New creates a Finder rooted at dir.
func New(dir string) *Finder {
	cache, _ := lru.New[string, string](cacheSize)
	return &Finder{root: dir, cache: cache}
}

// Root returns the search root the Finder was created with.
func (f *Finder) Root() string {
	return f.root
}

// Find locates a file named name (case-insensitive) anywhere under the root.
// It returns the first match in lexical walk order, which keeps duplicate
// names deterministic across hosts.
func (f *Finder) Find(name string) (string, bool) {
	return f.FindIn(f.root, name)
}

// FindIn is Find restricted to the given directory.
func (f *Finder) FindIn(dir, name string) (string, bool) {
	return f.find("file", dir, name, func(candidate string) bool {
		return strings.EqualFold(candidate, name)
	})
}

// FindImage locates an image named name anywhere under the root. Candidates
// match when their stem equals the target's stem (case-insensitive) and their
// extension is the target's own or one of the common image extensions.
func (f *Finder) FindImage(name string) (string, bool) {
	return f.FindImageIn(f.root, name)
}

// FindImageIn is FindImage restricted to the given directory.
func (f *Finder) FindImageIn(dir, name string) (string, bool) {
	stem, ext := splitName(name)
	return f.find("image", dir, name, func(candidate string) bool {
		cstem, cext := splitName(candidate)
		return strings.EqualFold(cstem, stem) && imageExtMatches(cext, ext)
	})
}

func (f *Finder) find(kind, dir, name string, match func(string) bool) (string, bool) {
	key := kind + "\x00" + dir + "\x00" + strings.ToLower(name)
	if hit, ok := f.cache.Get(key); ok {
		if _, err := os.Stat(hit); err == nil {
			return hit, true
		}
		f.cache.Remove(key)
	}

	var found string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries (including a missing dir itself) are
			// treated as "nothing there."
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if match(d.Name()) {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	if found == "" {
		return "", false
	}
	f.cache.Add(key, found)
	return found, true
}

func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

func imageExtMatches(candidate, target string) bool {
	if strings.EqualFold(candidate, target) {
		return true
	}
	for _, ext := range imageExts {
		if strings.EqualFold(candidate, ext) {
			return true
		}
	}
	return false
}
