// Package report runs one attendance document through extraction, parsing,
// variation and the output writers.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/hours"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/parser"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/variation"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/writer"
)

// ErrNoRows is returned when a document yields no attendance rows.
var ErrNoRows = errors.New("no attendance rows found")

// TextSource returns the raw recognized text of a document.
type TextSource interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// Processor turns documents into varied attendance reports.
type Processor struct {
	Source  TextSource
	Writers []writer.Writer
	Rand    variation.Source
	Logger  *slog.Logger

	// OutputDir receives the artifacts; nothing is written when empty.
	OutputDir string
	// ForceLayout skips classification when set.
	ForceLayout models.LayoutKind

	now func() time.Time
}

// Result describes one processed document.
type Result struct {
	RunID    uuid.UUID
	Layout   models.LayoutKind
	Scores   parser.Scores
	Original *models.ParsedDocument
	Varied   *models.ParsedDocument

	BaseName    string
	RawTextPath string
	Outputs     []string
}

// Process extracts the text of the document at path and processes it.
func (p *Processor) Process(ctx context.Context, path string) (*Result, error) {
	if p.Source == nil {
		return nil, fmt.Errorf("no text source configured")
	}
	raw, err := p.Source.ExtractText(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract text from %s: %w", path, err)
	}
	return p.ProcessText(ctx, raw)
}

// ProcessText classifies, parses and varies already-recognized text, then
// writes the configured artifacts. The raw text is saved before parsing, so a
// document without rows returns ErrNoRows together with a partial Result
// carrying RawTextPath.
func (p *Processor) ProcessText(ctx context.Context, raw string) (*Result, error) {
	res := &Result{RunID: uuid.New(), Scores: parser.Score(raw)}
	log := p.logger().With("run_id", res.RunID.String())

	res.Layout = p.ForceLayout
	if res.Layout == "" {
		res.Layout = parser.Classify(raw)
	}
	log.Info("layout selected",
		"layout", res.Layout,
		"detailed_score", res.Scores.Detailed,
		"simple_score", res.Scores.Simple,
		"forced", p.ForceLayout != "")

	if p.OutputDir != "" {
		if err := p.saveRawText(res, raw, log); err != nil {
			return nil, err
		}
	}

	lp, err := parser.New(res.Layout)
	if err != nil {
		return nil, err
	}
	doc := parser.Parse(lp, raw)
	for _, l := range doc.DebugLines {
		if l.Result == models.LineRejected {
			log.Debug("line rejected", "line", l.LineNum, "text", l.Text)
		}
	}
	doc.Rows = validRows(doc.Rows, log)
	res.Original = doc

	log.Info("lines parsed",
		"parser", lp.Name(),
		"rows", len(doc.Rows),
		"filtered", doc.Count(models.LineFiltered),
		"rejected", doc.Count(models.LineRejected))

	if len(doc.Rows) == 0 {
		if res.RawTextPath != "" {
			log.Warn("no rows parsed", "raw_text", res.RawTextPath)
		}
		return res, ErrNoRows
	}

	varied, err := variation.Randomize(doc.Rows, res.Layout, p.random())
	if err != nil {
		return nil, fmt.Errorf("vary rows: %w", err)
	}
	res.Varied = &models.ParsedDocument{Layout: res.Layout, Rows: varied, Summary: doc.Summary}
	logComparison(log, res.Original, res.Varied)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.OutputDir == "" {
		return res, nil
	}
	if err := p.writeReports(res, log); err != nil {
		return nil, err
	}
	return res, nil
}

// validRows drops rows whose clock readings cannot be computed with.
func validRows(rows []models.Row, log *slog.Logger) []models.Row {
	out := make([]models.Row, 0, len(rows))
	for _, r := range rows {
		if _, err := hours.Between(r.Entry, r.Exit, 0); err != nil {
			log.Warn("dropping row with invalid clock", "date", r.Date, "error", err)
			continue
		}
		out = append(out, r)
	}
	return out
}

func logComparison(log *slog.Logger, original, varied *models.ParsedDocument) {
	before := decimal.NewFromFloat(original.Totals().Hours)
	after := decimal.NewFromFloat(varied.Totals().Hours)
	log.Info("variation applied",
		"rows", len(varied.Rows),
		"original_hours", before.StringFixed(2),
		"varied_hours", after.StringFixed(2),
		"difference", after.Sub(before).Abs().StringFixed(2))
}

// saveRawText picks the run's base name and writes the recognized text.
func (p *Processor) saveRawText(res *Result, raw string, log *slog.Logger) error {
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	res.BaseName = BaseName(res.Layout, p.clock())
	if _, err := os.Stat(filepath.Join(p.OutputDir, res.BaseName+"_extracted_text.txt")); err == nil {
		res.BaseName += "_" + res.RunID.String()[:8]
	}

	res.RawTextPath = filepath.Join(p.OutputDir, res.BaseName+"_extracted_text.txt")
	if err := os.WriteFile(res.RawTextPath, []byte(raw), 0o644); err != nil {
		return fmt.Errorf("write extracted text: %w", err)
	}
	log.Debug("extracted text saved", "path", res.RawTextPath)
	return nil
}

func (p *Processor) writeReports(res *Result, log *slog.Logger) error {
	for _, w := range p.Writers {
		path := filepath.Join(p.OutputDir, res.BaseName+"."+w.Extension())
		if err := writer.WriteToFile(w, path, res.Varied); err != nil {
			return fmt.Errorf("write %s report: %w", w.Extension(), err)
		}
		res.Outputs = append(res.Outputs, path)
		log.Info("report written", "format", w.Extension(), "path", path)
	}
	return nil
}

// BaseName is the artifact file name stem for a run at t.
func BaseName(layout models.LayoutKind, t time.Time) string {
	return fmt.Sprintf("attendance_report_%s_%s", layout, t.Format("20060102_150405"))
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p *Processor) random() variation.Source {
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return p.Rand
}

func (p *Processor) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}
