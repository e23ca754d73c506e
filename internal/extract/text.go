package extract

import (
	"bytes"
	"fmt"

	"github.com/scamshield/scamshield/internal/normalize"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextExtractor decodes bytes permissively: UTF-16 when a BOM says so,
// otherwise UTF-8 with invalid sequences replaced. Replacement characters
// are then dropped, so undecodable garbage never fails the upload.
type TextExtractor struct{}

func (e *TextExtractor) Extract(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(encodingFor(data).NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}

	return normalize.Apply(string(decoded), normalize.Options{StripControl: true}), nil
}

func encodingFor(data []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return unicode.UTF8BOM
	default:
		return unicode.UTF8
	}
}
