package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/scamshield/scamshield/internal/normalize"
	"golang.org/x/net/html"
)

// HTMLExtractor strips markup from saved web pages, keeping only rendered
// text. Script and style bodies are not text.
type HTMLExtractor struct{}

func (e *HTMLExtractor) Extract(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	collectText(doc, &b)

	return normalize.Apply(b.String(), normalize.Options{
		CollapseWhitespace: true,
		StripControl:       true,
	}), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
