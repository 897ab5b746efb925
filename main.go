package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/config"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/extractor"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/report"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/writer"
)

const version = "1.0.0"

func main() {
	// CLI flags
	layoutFlag := flag.String("layout", "", "Report layout: simple, detailed (auto-detected if omitted)")
	outputFlag := flag.String("output-dir", "", "Directory for generated reports (default OUTPUT_DIR)")
	inputFlag := flag.String("input-dir", "", "Directory scanned when no files are given (default INPUT_DIR)")
	formatsFlag := flag.String("formats", "", "Comma-separated output formats: xlsx, html, csv, pdf (default OUTPUT_FORMATS)")
	seedFlag := flag.Uint64("seed", 0, "Random seed for reproducible variation (0 = random)")
	textFlag := flag.Bool("text", false, "Inputs are already-recognized text files; skip OCR")
	envFlag := flag.String("env", "", "Load configuration from this env file instead of .env")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Smart Attendance Report Generator

Reads scanned Hebrew attendance reports, extracts the daily rows and
produces a new report with realistically varied entry and exit times.

Usage:
  smart-pdf-generator [flags] [report.pdf ...]

With no files, every PDF in the input directory is processed.

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Process every scan in input_pdfs/
  smart-pdf-generator

  # Force the detailed layout and a fixed seed
  smart-pdf-generator --layout=detailed --seed=42 march.pdf

  # Re-run from previously extracted text, spreadsheet only
  smart-pdf-generator --text --formats=xlsx report_extracted_text.txt

Layouts:
  simple    - Date, day, entry, exit, hours (hourly rate and payment summary)
  detailed  - Adds location, break and the 100%%/125%%/150%% overtime bands
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("smart-pdf-generator v%s\n", version)
		os.Exit(0)
	}
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	var envFiles []string
	if *envFlag != "" {
		envFiles = append(envFiles, *envFlag)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		fatalf("%v\n", err)
	}
	applyFlags(cfg, *outputFlag, *inputFlag, *formatsFlag, *seedFlag)

	level, _ := config.ParseLevel(cfg.App.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var forced models.LayoutKind
	if *layoutFlag != "" {
		forced, err = models.ParseLayout(strings.ToLower(*layoutFlag))
		if err != nil {
			fatalf("%v\n", err)
		}
	}

	writers, err := buildWriters(cfg)
	if err != nil {
		fatalf("%v\n", err)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		ext := ".pdf"
		if *textFlag {
			ext = ".txt"
		}
		inputs, err = scanDir(cfg.App.InputDir, ext)
		if err != nil {
			fatalf("%v\n", err)
		}
		if len(inputs) == 0 {
			fmt.Fprintf(os.Stderr, "No %s files found in %s\n\n", ext, cfg.App.InputDir)
			flag.Usage()
			os.Exit(1)
		}
	}

	var source report.TextSource = extractor.TextFile{}
	if !*textFlag {
		ocr := extractor.NewOCR()
		ocr.Languages = cfg.OCR.Languages
		ocr.PSM = cfg.OCR.PSM
		ocr.DPI = cfg.OCR.DPI
		ocr.TessdataPrefix = cfg.OCR.TessdataPrefix
		ocr.PdftoppmPath = cfg.OCR.PdftoppmPath
		source = extractor.New(ocr, logger)
	}

	seed := cfg.Report.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("random source seeded", "seed", seed)

	proc := &report.Processor{
		Source:      source,
		Writers:     writers,
		Rand:        rand.New(rand.NewPCG(seed, seed>>1|1)),
		Logger:      logger,
		OutputDir:   cfg.App.OutputDir,
		ForceLayout: forced,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, inputPath := range inputs {
		if err := processFile(ctx, proc, inputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			failed++
			if ctx.Err() != nil {
				break
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d file(s) failed\n", failed, len(inputs))
		stop()
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config, outputDir, inputDir, formats string, seed uint64) {
	if outputDir != "" {
		cfg.App.OutputDir = outputDir
	}
	if inputDir != "" {
		cfg.App.InputDir = inputDir
	}
	if formats != "" {
		cfg.Report.Formats = strings.Split(formats, ",")
	}
	if seed != 0 {
		cfg.Report.RandomSeed = seed
	}
}

func buildWriters(cfg *config.Config) ([]writer.Writer, error) {
	var writers []writer.Writer
	for _, name := range cfg.Report.Formats {
		if strings.TrimSpace(name) == "" {
			continue
		}
		w, err := writer.ForFormat(name, cfg.Report.HourlyRate)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
	}
	if len(writers) == 0 {
		return nil, errors.New("no output formats selected")
	}
	return writers, nil
}

func scanDir(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

func processFile(ctx context.Context, proc *report.Processor, inputPath string) error {
	// Validate input file
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	res, err := proc.Process(ctx, inputPath)
	if errors.Is(err, report.ErrNoRows) {
		fmt.Println("  Warning: No attendance rows found. The scan may be unreadable or in an unexpected layout.")
		fmt.Println("  Try specifying the layout explicitly with --layout, and check the extracted text.")
		if res != nil && res.RawTextPath != "" {
			fmt.Printf("  Extracted text: %s\n", res.RawTextPath)
		}
		return err
	}
	if err != nil {
		return err
	}

	info := res.Layout.Describe()
	totals := res.Varied.Totals()
	fmt.Printf("  Layout: %s\n", info.Name)
	fmt.Printf("  Found %d row(s), %.2f hours (original %.2f)\n",
		totals.Days, totals.Hours, res.Original.Totals().Hours)
	for _, path := range res.Outputs {
		fmt.Printf("  Written: %s\n", path)
	}
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
	os.Exit(1)
}
