// Package extractor turns an attendance report file into raw recognized text.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Extractor prefers the PDF text layer of page 1 and falls back to OCR for
// scanned documents.
type Extractor struct {
	OCR    *OCR
	Logger *slog.Logger
}

// New returns an Extractor using ocr for scanned pages.
func New(ocr *OCR, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{OCR: ocr, Logger: logger}
}

// ExtractText returns the raw text of the document's first page.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	if n, err := PageCount(path); err == nil && n > 1 {
		e.Logger.Info("reading first page only", "file", path, "pages", n)
	}

	text, err := TextLayer(path)
	switch {
	case err != nil:
		e.Logger.Debug("no usable text layer", "file", path, "error", err)
	case isReadable(text):
		e.Logger.Info("using PDF text layer", "file", path, "chars", len([]rune(text)))
		return text, nil
	}

	if e.OCR == nil {
		return "", fmt.Errorf("%s has no readable text layer: %w", path, ErrOCRUnavailable)
	}
	e.Logger.Info("running OCR", "file", path, "languages", strings.Join(e.OCR.Languages, "+"), "dpi", e.OCR.DPI)
	return e.OCR.ExtractText(ctx, path)
}

// TextFile reads inputs that were already recognized, as UTF-8 text.
type TextFile struct{}

func (TextFile) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text input: %w", err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
