// Package markdown renders post content for the public blog.
package markdown

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"inkpress/src/core/ports"
)

// DefaultExcerptLength is the maximum excerpt length in characters.
const DefaultExcerptLength = 160

// Renderer converts Markdown to HTML with GitHub-flavoured extensions and
// heading anchors. Raw HTML in the source is not passed through.
type Renderer struct {
	md         goldmark.Markdown
	excerptLen int
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Renderer{md: md, excerptLen: DefaultExcerptLength}
}

func (r *Renderer) Render(src []byte) (ports.RenderedMarkdown, error) {
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))

	var (
		heads   []ports.Heading
		excerpt strings.Builder
	)
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			heads = append(heads, ports.Heading{
				Level: node.Level,
				ID:    attrString(node, "id"),
				Text:  plainText(node, src),
			})
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if utf8.RuneCountInString(excerpt.String()) < r.excerptLen {
				if excerpt.Len() > 0 {
					excerpt.WriteByte(' ')
				}
				excerpt.WriteString(plainText(node, src))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, src, doc); err != nil {
		return ports.RenderedMarkdown{}, err
	}
	return ports.RenderedMarkdown{
		HTML:     buf.String(),
		Excerpt:  truncate(excerpt.String(), r.excerptLen),
		Headings: heads,
	}, nil
}

func attrString(n ast.Node, name string) string {
	v, ok := n.AttributeString(name)
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case []byte:
		return string(id)
	}
	return ""
}

// plainText concatenates the text content of n and its descendants.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// truncate shortens s to at most limit characters on a word boundary,
// appending an ellipsis when anything was cut.
func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	cut := string([]rune(s)[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

var _ ports.MarkdownRenderer = (*Renderer)(nil)
