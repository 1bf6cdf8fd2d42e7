package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/corrections"
	"github.com/hunggoodkidz/data-extraction-module/internal/export"
	"github.com/hunggoodkidz/data-extraction-module/internal/llm/ollama"
	"github.com/hunggoodkidz/data-extraction-module/internal/ocr"
	"github.com/hunggoodkidz/data-extraction-module/internal/pipeline"
	repo "github.com/hunggoodkidz/data-extraction-module/internal/repository"
	"github.com/hunggoodkidz/data-extraction-module/internal/storage"
)

// extractor is the main entrypoint: it ingests reports and runs the
// extraction stages against registered documents.
//
//	extractor -ingest report.pdf
//	extractor -doc <uuid> -op raw
//	extractor -doc <uuid> -op profile
//	extractor -doc <uuid> -op financials
//	extractor -company <uuid> -op export -out highlights.xlsx
//	extractor -field <uuid> -correct "fixed value" -by reviewer -reason "typo"
//	extractor -list
func main() {
	var (
		ingestPath  = flag.String("ingest", "", "path to a PDF to ingest")
		docID       = flag.String("doc", "", "document ID for -op raw|profile|financials")
		companyID   = flag.String("company", "", "company ID for -op export")
		op          = flag.String("op", "", "operation: raw | profile | financials | export")
		outPath     = flag.String("out", "", "output path for -op export")
		fieldID     = flag.String("field", "", "extracted field ID for -correct")
		correctVal  = flag.String("correct", "", "corrected value to record against -field")
		correctBy   = flag.String("by", "", "who recorded the correction")
		correctWhy  = flag.String("reason", "", "why the correction was recorded")
		listDocs    = flag.Bool("list", false, "list registered documents")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewLocalStore(cfg.Storage.UploadDir, logger)
	if err != nil {
		logger.Error("init storage", "error", err)
		os.Exit(1)
	}
	text := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Pdftotext:     cfg.OCR.Pdftotext,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)
	oracle := ollama.NewClient(ollama.Config{
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	docs := repo.NewDocumentRepository(entc, logger)
	fields := repo.NewExtractedFieldRepository(entc, logger)
	funds := repo.NewFundRepository(entc, logger)
	companies := repo.NewCompanyRepository(entc, logger)
	investments := repo.NewInvestmentRepository(entc, logger)
	financials := repo.NewFinancialRepository(entc, logger)
	corrRepo := repo.NewCorrectionRepository(entc, logger)

	proc := pipeline.NewProcessor(pipeline.Config{}, store, text, oracle,
		docs, fields, funds, companies, investments, financials, logger)
	exporter := export.NewService(companies, investments, financials, logger)
	corrector := corrections.NewService(fields, corrRepo, logger)

	switch {
	case *ingestPath != "":
		data, err := os.ReadFile(*ingestPath)
		if err != nil {
			logger.Error("read upload", "path", *ingestPath, "error", err)
			os.Exit(1)
		}
		doc, err := proc.Ingest(ctx, filepath.Base(*ingestPath), data)
		if err != nil {
			logger.Error("ingest failed", "path", *ingestPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("document %s registered (%s)\n", doc.ID, doc.FileName)

	case *docID != "":
		id, err := uuid.Parse(*docID)
		if err != nil {
			logger.Error("invalid document id", "arg", *docID, "error", err)
			os.Exit(2)
		}
		switch *op {
		case "raw":
			res, err := proc.ExtractRawText(ctx, id)
			if err != nil {
				logger.Error("raw text extraction failed", "document_id", id, "error", err)
				os.Exit(1)
			}
			fmt.Printf("extracted %d pages via %s (%d warnings)\n", res.Pages, res.Method, len(res.Warnings))
		case "profile":
			company, inv, err := proc.ExtractCompanyProfile(ctx, id)
			if err != nil {
				logger.Error("profile extraction failed", "document_id", id, "error", err)
				os.Exit(1)
			}
			fmt.Printf("company %s (%s), investment %s\n", company.Name, company.ID, inv.ID)
		case "financials":
			fh, err := proc.ExtractFinancialHighlights(ctx, id)
			if err != nil {
				logger.Error("financial extraction failed", "document_id", id, "error", err)
				os.Exit(1)
			}
			fmt.Printf("financial highlights %s recorded for period %s\n", fh.ID, fh.Period)
		default:
			logger.Error("unknown operation for -doc", "op", *op)
			os.Exit(2)
		}

	case *companyID != "":
		if *op != "export" {
			logger.Error("unknown operation for -company", "op", *op)
			os.Exit(2)
		}
		id, err := uuid.Parse(*companyID)
		if err != nil {
			logger.Error("invalid company id", "arg", *companyID, "error", err)
			os.Exit(2)
		}
		out := *outPath
		if out == "" {
			out = id.String() + ".xlsx"
		}
		data, err := exporter.ExportCompanyXLSX(ctx, id)
		if err != nil {
			logger.Error("export failed", "company_id", id, "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			logger.Error("write workbook", "path", out, "error", err)
			os.Exit(1)
		}
		fmt.Printf("workbook written to %s (%d bytes)\n", out, len(data))

	case *fieldID != "":
		id, err := uuid.Parse(*fieldID)
		if err != nil {
			logger.Error("invalid field id", "arg", *fieldID, "error", err)
			os.Exit(2)
		}
		if *correctVal == "" {
			logger.Error("-correct value required with -field")
			os.Exit(2)
		}
		var by, why *string
		if *correctBy != "" {
			by = correctBy
		}
		if *correctWhy != "" {
			why = correctWhy
		}
		c, err := corrector.Record(ctx, id, *correctVal, by, why)
		if err != nil {
			logger.Error("correction failed", "field_id", id, "error", err)
			os.Exit(1)
		}
		fmt.Printf("correction %s recorded\n", c.ID)

	case *listDocs:
		list, err := docs.List(ctx)
		if err != nil {
			logger.Error("list documents failed", "error", err)
			os.Exit(1)
		}
		for _, d := range list {
			fmt.Printf("%s  %s  uploaded=%s\n", d.ID, d.FileName, d.UploadedAt.Format(time.RFC3339))
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}
