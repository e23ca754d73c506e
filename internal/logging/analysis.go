package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Record is written as a single JSON object per analysis request.
type Record struct {
	Timestamp  time.Time `json:"ts"`
	RequestID  string    `json:"request_id"`
	Source     string    `json:"source"`
	Filename   string    `json:"filename,omitempty"`
	Score      int       `json:"score"`
	IsLegit    bool      `json:"is_legit"`
	Warnings   []string  `json:"warnings"`
	StatusCode int       `json:"status_code"`
	DurationMS int64     `json:"duration_ms"`
}

type AnalysisLogger struct {
	w io.Writer
}

func NewAnalysisLogger(w io.Writer) *AnalysisLogger {
	return &AnalysisLogger{w: w}
}

func OpenAnalysisLog(path string) (*AnalysisLogger, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewAnalysisLogger(file), file.Close, nil
}

func (l *AnalysisLogger) Write(record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = l.w.Write(append(data, '\n'))
	return err
}
