package materialize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CategoryFile is the grouping descriptor name the site generator expects in
// each directory that represents a titled, ordered group.
const CategoryFile = "_category_.json"

// Category is the grouping metadata written once per interior directory.
type Category struct {
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// writeCategory creates dir if needed and writes its grouping descriptor.
func writeCategory(dir, label string, position int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(Category{Label: label, Position: position}, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(dir, CategoryFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// frontmatter renders the header block prepended to every written file. The
// site generator reads the title and sidebar position from it.
func frontmatter(title string, position int) string {
	return fmt.Sprintf("---\ntitle: %q\nsidebar_position: %d\n---\n\n", title, position)
}
