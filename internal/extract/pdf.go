package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/scamshield/scamshield/internal/normalize"
)

// PDFExtractor pulls text out of a PDF page by page. The parser panics on
// some malformed files, so every call into it runs behind a recover; a page
// that cannot be read contributes an empty string instead of failing the
// whole document.
type PDFExtractor struct{}

func (e *PDFExtractor) Extract(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := reader.NumPage()
	parts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		parts = append(parts, pageText(reader, i))
	}

	return strings.Join(parts, "\n"), nil
}

func pageText(reader *pdf.Reader, n int) (out string) {
	defer func() { _ = recover() }()

	page := reader.Page(n)
	if page.V.IsNull() {
		return ""
	}

	var b strings.Builder
	for _, item := range page.Content().Text {
		b.WriteString(item.S)
		b.WriteByte(' ')
	}

	return normalize.Apply(b.String(), normalize.Options{
		CollapseWhitespace: true,
		StripControl:       true,
	})
}
