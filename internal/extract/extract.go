package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF turns raw PDF bytes into plain text via github.com/ledongthuc/pdf.
// It implements the Extractor seam the document store depends on.
type PDF struct{}

// Extract parses the payload and returns its plain text and page count.
// Malformed or empty input fails; nothing is partially extracted.
func (PDF) Extract(ctx context.Context, data []byte) (string, int, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	if len(data) == 0 {
		return "", 0, errors.New("empty payload")
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("parse pdf: %w", err)
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", 0, fmt.Errorf("read text: %w", err)
	}

	return normalizeWhitespace(buf.String()), pdfReader.NumPage(), nil
}

// normalizeWhitespace collapses runs of whitespace the way the extraction
// output is consumed downstream: one space between words, no leading/trailing
// blanks.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
