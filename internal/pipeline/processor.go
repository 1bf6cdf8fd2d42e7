package pipeline

import (
	"log/slog"

	"github.com/hunggoodkidz/data-extraction-module/constants"
	"github.com/hunggoodkidz/data-extraction-module/internal/llm"
	"github.com/hunggoodkidz/data-extraction-module/internal/ocr"
	"github.com/hunggoodkidz/data-extraction-module/internal/repository"
	"github.com/hunggoodkidz/data-extraction-module/internal/storage"
)

// Config tunes the pipeline stages.
type Config struct {
	// PreviewPages is how many leading pages feed entity identification.
	PreviewPages int
}

// Processor drives the document extraction pipeline: ingestion, raw text
// acquisition, and the two structured extraction stages. All collaborators
// are interfaces so stages can be exercised without a database, a PDF
// toolchain, or a live completion oracle.
type Processor struct {
	cfg    Config
	store  storage.Store
	text   ocr.TextSource
	oracle llm.Completer

	docs        repository.DocumentRepository
	fields      repository.ExtractedFieldRepository
	funds       repository.FundRepository
	companies   repository.CompanyRepository
	investments repository.InvestmentRepository
	financials  repository.FinancialRepository

	logger *slog.Logger
}

func NewProcessor(
	cfg Config,
	store storage.Store,
	text ocr.TextSource,
	oracle llm.Completer,
	docs repository.DocumentRepository,
	fields repository.ExtractedFieldRepository,
	funds repository.FundRepository,
	companies repository.CompanyRepository,
	investments repository.InvestmentRepository,
	financials repository.FinancialRepository,
	logger *slog.Logger,
) *Processor {
	if cfg.PreviewPages <= 0 {
		cfg.PreviewPages = constants.DefaultPreviewPages
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:         cfg,
		store:       store,
		text:        text,
		oracle:      oracle,
		docs:        docs,
		fields:      fields,
		funds:       funds,
		companies:   companies,
		investments: investments,
		financials:  financials,
		logger:      logger,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
