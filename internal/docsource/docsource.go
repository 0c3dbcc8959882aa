// Package docsource loads document text from plain-text, Markdown and PDF
// files, or from standard input.
package docsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrUnsupported is returned for files that are neither PDF nor UTF-8 text.
var ErrUnsupported = errors.New("unsupported document type")

var pdfMagic = []byte("%PDF-")

// Read returns the text of the document at path. Stdin reads from stdin.
// PDFs are recognized by their header; anything else must be UTF-8 text and
// is returned verbatim, line breaks included, minus a leading byte-order mark.
func Read(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Extract(filepath.Base(path), data)
}

// Extract converts the raw bytes of a document named name to text.
func Extract(name string, data []byte) (string, error) {
	if bytes.HasPrefix(data, pdfMagic) {
		return extractPDF(data)
	}
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", fmt.Errorf("%s: missing PDF header: %w", name, ErrUnsupported)
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%s: not UTF-8 text: %w", name, ErrUnsupported)
	}
	return string(bytes.TrimPrefix(data, []byte("\ufeff"))), nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	text, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return string(text), nil
}
