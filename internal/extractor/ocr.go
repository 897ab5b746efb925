package extractor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ErrOCRUnavailable is returned when the page rasterizer cannot be found.
var ErrOCRUnavailable = errors.New("ocr unavailable")

// OCR rasterizes the first page of a scanned PDF with pdftoppm and reads it
// with Tesseract.
type OCR struct {
	Languages      []string
	PSM            int
	DPI            int
	TessdataPrefix string
	PdftoppmPath   string

	newClient func() *gosseract.Client
}

// NewOCR returns an OCR configured for Hebrew attendance scans: heb+eng,
// a single uniform text block, 300 DPI.
func NewOCR() *OCR {
	return &OCR{
		Languages:    []string{"heb", "eng"},
		PSM:          int(gosseract.PSM_SINGLE_BLOCK),
		DPI:          300,
		PdftoppmPath: "pdftoppm",
		newClient:    gosseract.NewClient,
	}
}

// Available reports whether the rasterizer binary can be found.
func (o *OCR) Available() error {
	if _, err := exec.LookPath(o.PdftoppmPath); err != nil {
		return fmt.Errorf("%w: %s not found (install poppler-utils): %v", ErrOCRUnavailable, o.PdftoppmPath, err)
	}
	return nil
}

// ExtractText returns the recognized text of page 1.
func (o *OCR) ExtractText(ctx context.Context, path string) (string, error) {
	if err := o.Available(); err != nil {
		return "", err
	}
	img, err := o.rasterize(ctx, path)
	if err != nil {
		return "", err
	}
	return o.Recognize(ctx, img)
}

// Recognize runs Tesseract over a PNG image.
func (o *OCR) Recognize(ctx context.Context, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	newClient := o.newClient
	if newClient == nil {
		newClient = gosseract.NewClient
	}
	c := newClient()
	defer c.Close()

	if o.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(o.TessdataPrefix); err != nil {
			return "", fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if len(o.Languages) > 0 {
		if err := c.SetLanguage(o.Languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if err := c.SetPageSegMode(gosseract.PageSegMode(o.PSM)); err != nil {
		return "", fmt.Errorf("set page segmentation mode: %w", err)
	}
	if o.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), strconv.Itoa(o.DPI)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := c.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

// rasterize renders page 1 to PNG at the configured DPI.
func (o *OCR) rasterize(ctx context.Context, path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	tmpDir, err := os.MkdirTemp("", "ocr-page-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, o.PdftoppmPath,
		"-r", strconv.Itoa(o.DPI), "-png", "-f", "1", "-l", "1", path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	// pdftoppm pads the page number to the document's page count width.
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return nil, fmt.Errorf("read temp dir: %w", err)
	}
	var images []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".png") {
			images = append(images, filepath.Join(tmpDir, e.Name()))
		}
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no page image for %s", path)
	}
	sort.Strings(images)

	return os.ReadFile(images[0])
}
