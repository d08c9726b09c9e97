// Package ingestion turns uploaded resume documents into plain text ready
// for analysis. It handles PDF, DOCX, and plain text inputs and normalizes
// the extracted text.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat indicates the file extension is not one of .pdf,
// .docx, or .txt.
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported document format %q: use .pdf, .docx, or .txt", e.Extension)
}

// ErrEmptyDocument indicates extraction succeeded but produced no usable
// text, for example a scanned image PDF.
type ErrEmptyDocument struct {
	Filename string
}

func (e *ErrEmptyDocument) Error() string {
	return fmt.Sprintf("no text could be extracted from %q", e.Filename)
}

// ExtractText extracts plain text from a document, dispatching on the file
// extension. The returned text is cleaned and normalized.
func ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx":
		text, err = extractDocxText(data)
	case ".txt":
		text = string(data)
	default:
		return "", &ErrUnsupportedFormat{Extension: ext}
	}
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", filename, err)
	}

	text = CleanText(text)
	if text == "" {
		return "", &ErrEmptyDocument{Filename: filename}
	}
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plainText); err != nil {
		return "", fmt.Errorf("copying pdf text: %w", err)
	}
	return buf.String(), nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]*>`)

func extractDocxText(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer func() { _ = reader.Close() }()

	content := reader.Editable().GetContent()

	// The editable content is WordprocessingML; paragraph closings become
	// newlines and the remaining tags are stripped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	return xmlTagRe.ReplaceAllString(content, ""), nil
}
