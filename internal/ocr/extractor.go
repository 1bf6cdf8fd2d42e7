package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hunggoodkidz/data-extraction-module/constants"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

// PageText is the text recovered from one page of a document.
type PageText struct {
	Number int
	Text   string
}

// Result is the outcome of a full acquisition run.
type Result struct {
	Pages    []PageText
	Method   string // "pdf-text" | "pdf-ocr"
	Tables   int    // table blocks appended to the combined output
	Duration time.Duration
	Warnings []string
}

// Combined joins page texts in page order.
func (r Result) Combined() string {
	parts := make([]string, 0, len(r.Pages))
	for _, p := range r.Pages {
		parts = append(parts, p.Text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// TextSource is what the pipeline depends on for text acquisition.
type TextSource interface {
	Extract(ctx context.Context, path string) (Result, error)
	Preview(ctx context.Context, path string, maxPages int) (string, error)
}

type nativeFunc func(path string, maxPages int) ([]PageText, error)
type pageCountFunc func(path string) (int, error)

type Extractor struct {
	cfg       Config
	runner    Runner
	native    nativeFunc
	pageCount pageCountFunc
	logger    *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{
		cfg:       cfg,
		runner:    execRunner{},
		native:    nativePages,
		pageCount: pdfcpuPageCount,
		logger:    logger,
	}
}

// Extract produces page-ordered text for a PDF. The digital text layer is
// read first; OCR runs only when that pass yields no usable content, since
// rasterization is the most expensive stage. Table-layout rendering is
// best-effort supplementary data and runs regardless of which text
// strategy won, appended to the combined output. Sub-stage failures
// degrade to "no contribution from this stage" and are collected as
// warnings; only a missing file is fatal.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("open %q: %w", path, err)
	}

	res := Result{Method: "pdf-text"}

	pages, err := e.native(path, e.cfg.MaxPages)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("text layer: %v", err))
		pages = nil
	}
	res.Pages = pages

	if res.Combined() == "" {
		e.logger.Info("ocr.fallback", "path", path, "reason", "no digital text")
		ocrPages, warns, err := e.rasterizeOCR(ctx, path)
		res.Warnings = append(res.Warnings, warns...)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("ocr: %v", err))
		} else {
			res.Pages = ocrPages
			res.Method = "pdf-ocr"
		}
	}

	if n, err := e.pageCount(path); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("page count: %v", err))
	} else if n != len(res.Pages) {
		e.logger.Warn("ocr.page_count_mismatch", "path", path, "expected", n, "got", len(res.Pages))
	}

	blocks, warns := e.tableBlocks(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if len(blocks) > 0 {
		res.Tables = len(blocks)
		tableText := strings.Join(blocks, "\n\n")
		if len(res.Pages) == 0 {
			res.Pages = []PageText{{Number: 1, Text: tableText}}
		} else {
			last := &res.Pages[len(res.Pages)-1]
			if last.Text != "" {
				last.Text += "\n\n"
			}
			last.Text += tableText
		}
	}

	res.Duration = time.Since(start)
	e.logger.Info("ocr.extract.done",
		"path", path,
		"method", res.Method,
		"pages", len(res.Pages),
		"tables", res.Tables,
		"warnings", len(res.Warnings),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// Preview extracts digital text from only the first maxPages pages
// (default 2). Unlike Extract, failures here surface to the caller: the
// preview is a prerequisite for entity identification, so a broken PDF
// must be reported rather than silently yielding an empty prompt.
func (e *Extractor) Preview(ctx context.Context, path string, maxPages int) (string, error) {
	_ = ctx
	if maxPages <= 0 {
		maxPages = constants.DefaultPreviewPages
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("open %q: %w", path, err)
	}
	pages, err := e.native(path, maxPages)
	if err != nil {
		return "", fmt.Errorf("preview %q: %w", path, err)
	}
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, p.Text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
