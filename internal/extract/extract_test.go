package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	registry := NewRegistry(nil)

	text, err := registry.Extract([]byte("Pay ₹999 for your offer letter"), "offer.txt")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if text != "Pay ₹999 for your offer letter" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractDropsUndecodableBytes(t *testing.T) {
	registry := NewRegistry(nil)

	data := append([]byte("hello "), 0xFF, 0xFE, 0xFD)
	data = append(data, []byte(" world")...)
	text, err := registry.Extract(data, "notes.txt")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if !strings.Contains(text, "hello") || !strings.Contains(text, "world") {
		t.Fatalf("expected readable text to survive, got %q", text)
	}
	if strings.ContainsRune(text, '�') {
		t.Fatalf("expected replacement runes to be dropped, got %q", text)
	}
}

func TestExtractUTF16(t *testing.T) {
	registry := NewRegistry(nil)

	// "job" in UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE, 'j', 0x00, 'o', 0x00, 'b', 0x00}
	text, err := registry.Extract(data, "offer.txt")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if text != "job" {
		t.Fatalf("expected %q, got %q", "job", text)
	}
}

func TestExtractUnknownExtensionFallsBackToText(t *testing.T) {
	registry := NewRegistry(nil)

	text, err := registry.Extract([]byte("plain content"), "offer.docx.bak")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if text != "plain content" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestExtractWhitespaceOnlyIsNoContent(t *testing.T) {
	registry := NewRegistry(nil)

	if _, err := registry.Extract([]byte("  \n\t  "), "blank.txt"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestExtractZeroBytePDFIsNoContent(t *testing.T) {
	registry := NewRegistry(nil)

	if _, err := registry.Extract(nil, "offer.pdf"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestExtractCorruptPDFIsNoContent(t *testing.T) {
	registry := NewRegistry(nil)

	data := []byte("%PDF-1.4 this is not a real pdf body")
	if _, err := registry.Extract(data, "OFFER.PDF"); !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestExtractHTMLStripsMarkup(t *testing.T) {
	registry := NewRegistry(nil)

	page := []byte(`<html><head><style>body{color:red}</style><script>alert(1)</script></head>` +
		`<body><h1>Job Offer</h1><p>Pay ₹999   registration</p></body></html>`)
	text, err := registry.Extract(page, "offer.html")
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if text != "Job Offer Pay ₹999 registration" {
		t.Fatalf("unexpected text %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Fatalf("script/style content leaked into %q", text)
	}
}

func TestKind(t *testing.T) {
	cases := map[string]string{
		"offer.pdf":  "pdf",
		"OFFER.PDF":  "pdf",
		"page.html":  "html",
		"page.htm":   "html",
		"notes.txt":  "text",
		"":           "text",
		"archive.gz": "text",
	}

	for filename, expected := range cases {
		if got := Kind(filename); got != expected {
			t.Fatalf("Kind(%q) expected %q, got %q", filename, expected, got)
		}
	}
}
