package materialize

import (
	"fmt"
	"path/filepath"
)

// cursor is the materializer's "where am I writing now" state: an explicit
// stack of directory segments below the output root. The stack depth is the
// current nesting level, so an ascent can never escape the root.
type cursor struct {
	root  string
	stack []string
}

func (c *cursor) level() int {
	return len(c.stack)
}

func (c *cursor) path() string {
	return filepath.Join(append([]string{c.root}, c.stack...)...)
}

func (c *cursor) push(segment string) {
	c.stack = append(c.stack, segment)
}

// pop moves the cursor up n directories. Popping past the output root is a
// structural error in the outline, not a filesystem operation to attempt.
func (c *cursor) pop(n int) error {
	if n > len(c.stack) {
		return fmt.Errorf("outline ascends %d levels but cursor is only %d deep", n, len(c.stack))
	}
	c.stack = c.stack[:len(c.stack)-n]
	return nil
}
