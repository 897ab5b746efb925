package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OCR    OCRConfig
	App    AppConfig
	Report ReportConfig
}

// OCRConfig holds the Tesseract and rasterizer settings
type OCRConfig struct {
	Languages      []string
	PSM            int
	DPI            int
	TessdataPrefix string
	PdftoppmPath   string
}

// AppConfig holds application configuration
type AppConfig struct {
	InputDir  string
	OutputDir string
	LogLevel  string
}

type ReportConfig struct {
	Formats    []string
	RandomSeed uint64
	HourlyRate float64
}

// Load reads an optional .env file, then the environment. Files named
// explicitly must exist.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading env file: %w", err)
		}
	}

	config := &Config{}

	psm, err := strconv.Atoi(getEnv("OCR_PSM", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_PSM: %w", err)
	}
	dpi, err := strconv.Atoi(getEnv("OCR_DPI", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_DPI: %w", err)
	}

	config.OCR = OCRConfig{
		Languages:      getEnvSlice("OCR_LANGUAGES", "+", "heb+eng"),
		PSM:            psm,
		DPI:            dpi,
		TessdataPrefix: getEnv("TESSDATA_PREFIX", ""),
		PdftoppmPath:   getEnv("PDFTOPPM_PATH", "pdftoppm"),
	}

	config.App = AppConfig{
		InputDir:  getEnv("INPUT_DIR", "input_pdfs"),
		OutputDir: getEnv("OUTPUT_DIR", "output_pdfs"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	seed, err := strconv.ParseUint(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
	}
	rate, err := strconv.ParseFloat(getEnv("DEFAULT_HOURLY_RATE", "32.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_HOURLY_RATE: %w", err)
	}

	config.Report = ReportConfig{
		Formats:    getEnvSlice("OUTPUT_FORMATS", ",", "xlsx,html,csv,pdf"),
		RandomSeed: seed,
		HourlyRate: rate,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.OCR.Languages) == 0 {
		return fmt.Errorf("OCR_LANGUAGES is required")
	}
	if c.OCR.PSM < 0 || c.OCR.PSM > 13 {
		return fmt.Errorf("OCR_PSM must be between 0 and 13, got %d", c.OCR.PSM)
	}
	if c.OCR.DPI <= 0 {
		return fmt.Errorf("OCR_DPI must be positive, got %d", c.OCR.DPI)
	}
	if c.App.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	if len(c.Report.Formats) == 0 {
		return fmt.Errorf("OUTPUT_FORMATS is required")
	}
	if c.Report.HourlyRate <= 0 {
		return fmt.Errorf("DEFAULT_HOURLY_RATE must be positive, got %v", c.Report.HourlyRate)
	}
	if _, err := ParseLevel(c.App.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps LOG_LEVEL to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSlice(key, sep, defaultValue string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, defaultValue), sep) {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
