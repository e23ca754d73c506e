package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Response messages for requests whose shape cannot yield analyzable text.
const (
	msgEmptyFile = "Empty file"
	msgEmptyText = "Empty text input"
	msgNoInput   = "No valid input provided"
	msgNoContent = "No readable content found"
)

const maxMultipartMemory = 4 << 20

// InputShapeError is the recoverable, request-scoped input failure: it maps
// to a 400 with its message as the response body.
type InputShapeError struct {
	Message string
}

func (e *InputShapeError) Error() string {
	return e.Message
}

type inputKind int

const (
	inputInvalid inputKind = iota
	inputFile
	inputJSON
	inputForm
)

func (k inputKind) String() string {
	switch k {
	case inputFile:
		return "file"
	case inputJSON:
		return "json"
	case inputForm:
		return "form"
	default:
		return "invalid"
	}
}

// analyzeInput is the request shape resolved once at the boundary. The
// engine and extractor never see transport details.
type analyzeInput struct {
	kind     inputKind
	text     string
	filename string
	data     []byte
}

func resolveInput(r *http.Request) (analyzeInput, error) {
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		return resolveMultipart(r)
	case strings.HasPrefix(contentType, "application/json"):
		return resolveJSON(r)
	default:
		return resolveForm(r)
	}
}

func resolveMultipart(r *http.Request) (analyzeInput, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return analyzeInput{}, &InputShapeError{Message: msgNoInput}
	}

	if headers := r.MultipartForm.File["file"]; len(headers) > 0 {
		header := headers[0]
		if header.Filename == "" {
			return analyzeInput{}, &InputShapeError{Message: msgEmptyFile}
		}
		file, err := header.Open()
		if err != nil {
			return analyzeInput{}, fmt.Errorf("open upload: %w", err)
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return analyzeInput{}, fmt.Errorf("read upload: %w", err)
		}
		return analyzeInput{kind: inputFile, filename: header.Filename, data: data}, nil
	}

	// A file input submitted without a selection arrives as a bare form
	// value with an empty filename.
	if _, ok := r.MultipartForm.Value["file"]; ok {
		return analyzeInput{}, &InputShapeError{Message: msgEmptyFile}
	}

	if values, ok := r.MultipartForm.Value["text"]; ok {
		return textInput(inputForm, first(values))
	}

	return analyzeInput{}, &InputShapeError{Message: msgNoInput}
}

func resolveJSON(r *http.Request) (analyzeInput, error) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return analyzeInput{}, fmt.Errorf("decode json body: %w", err)
	}
	return textInput(inputJSON, payload.Text)
}

func resolveForm(r *http.Request) (analyzeInput, error) {
	if err := r.ParseForm(); err != nil {
		return analyzeInput{}, &InputShapeError{Message: msgNoInput}
	}
	values, ok := r.PostForm["text"]
	if !ok {
		return analyzeInput{}, &InputShapeError{Message: msgNoInput}
	}
	return textInput(inputForm, first(values))
}

func textInput(kind inputKind, text string) (analyzeInput, error) {
	if strings.TrimSpace(text) == "" {
		return analyzeInput{}, &InputShapeError{Message: msgEmptyText}
	}
	return analyzeInput{kind: kind, text: text}, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
