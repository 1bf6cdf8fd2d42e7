package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/ocr"
)

// runtext exercises text acquisition against a PDF on disk without
// touching the database: useful for checking what the pipeline would see
// for a given report before ingesting it.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runtext <path-to-pdf>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Pdftotext:     cfg.OCR.Pdftotext,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text acquisition failed", "path", path, "error", err)
		os.Exit(1)
	}

	logger.Info("text acquisition OK",
		"path", path,
		"method", res.Method,
		"pages", len(res.Pages),
		"tables", res.Tables,
		"chars", len(res.Combined()),
		"warnings", len(res.Warnings),
		"duration_ms", res.Duration.Milliseconds(),
	)
	for _, w := range res.Warnings {
		logger.Warn("acquisition warning", "warning", w)
	}
}
