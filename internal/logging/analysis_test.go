package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAnalysisLoggerWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	logger := NewAnalysisLogger(&buf)

	record := Record{
		Timestamp:  time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC),
		RequestID:  "req-1",
		Source:     "json",
		Score:      60,
		IsLegit:    false,
		Warnings:   []string{"no_interview", "payment_request"},
		StatusCode: 200,
		DurationMS: 3,
	}

	if err := logger.Write(record); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if err := logger.Write(record); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var parsed Record
	if err := json.Unmarshal([]byte(lines[0]), &parsed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if parsed.Score != 60 || len(parsed.Warnings) != 2 {
		t.Fatalf("round trip mismatch: %+v", parsed)
	}
}
