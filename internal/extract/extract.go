// Package extract turns uploaded document bytes into plain text for analysis.
package extract

import (
	"errors"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrNoContent means no usable text could be obtained from the upload. Every
// extraction failure collapses into it; the cause is only logged.
var ErrNoContent = errors.New("no readable content")

// Extractor converts raw file bytes into plain text.
type Extractor interface {
	Extract(data []byte) (string, error)
}

// Registry dispatches on filename extension, case-insensitive. Unknown
// extensions (and missing filenames) fall back to the permissive text decode.
type Registry struct {
	byExt    map[string]Extractor
	fallback Extractor
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	pdf := &PDFExtractor{}
	html := &HTMLExtractor{}
	return &Registry{
		byExt: map[string]Extractor{
			".pdf":  pdf,
			".html": html,
			".htm":  html,
		},
		fallback: &TextExtractor{},
		log:      log,
	}
}

func (r *Registry) Extract(data []byte, filename string) (string, error) {
	extractor, ok := r.byExt[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		extractor = r.fallback
	}

	text, err := extractor.Extract(data)
	if err != nil {
		r.log.Warn("extraction failed",
			zap.String("filename", filename),
			zap.String("format", Kind(filename)),
			zap.Error(err))
		return "", ErrNoContent
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// Kind names the extraction path a filename takes, for logs and metrics.
func Kind(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".html", ".htm":
		return "html"
	default:
		return "text"
	}
}
