package content

import (
	"path/filepath"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// imagePattern matches markdown image syntax: ![alt](path).
var imagePattern = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// RewriteImages replaces every image reference with the canonical form
// ![](./img/<basename>). Alt text is dropped. The rewrite does not check that
// the image exists; the reconciler verifies that after materialization.
func RewriteImages(doc string) string {
	return imagePattern.ReplaceAllStringFunc(doc, func(match string) string {
		m := imagePattern.FindStringSubmatch(match)
		return "![](./img/" + filepath.Base(m[1]) + ")"
	})
}

// ExtractImages returns the destination of every image reference in the
// markdown source, in document order. It walks the goldmark AST rather than
// re-matching text, so references inside code blocks are not reported.
func ExtractImages(src string) []string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader([]byte(src)))

	var refs []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			refs = append(refs, string(img.Destination))
		}
		return ast.WalkContinue, nil
	})
	return refs
}
