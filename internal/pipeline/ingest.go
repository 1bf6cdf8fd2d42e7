package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/constants"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
	"github.com/hunggoodkidz/data-extraction-module/internal/llm"
)

// Ingest accepts an uploaded PDF, identifies the fund and company it
// belongs to, and registers a Document linked to both. Validation runs
// before any byte is stored; oracle or parse failures after storage leave
// the saved file behind but create no Document row, so a retry starts
// clean from the database's point of view.
func (p *Processor) Ingest(ctx context.Context, fileName string, data []byte) (*entity.Document, error) {
	start := time.Now()

	base := filepath.Base(fileName)
	if !constants.IsAllowedExt(filepath.Ext(base)) {
		return nil, common.NewAppError("UNSUPPORTED_FILE_TYPE",
			"only PDF uploads are accepted, got "+base, common.ErrValidation)
	}

	id := uuid.New()
	storedName := id.String() + "_" + base
	path, err := p.store.Save(storedName, data)
	if err != nil {
		return nil, common.WrapError(err, "store upload")
	}

	preview, err := p.text.Preview(ctx, path, p.cfg.PreviewPages)
	if err != nil {
		return nil, common.WrapError(err, "preview text")
	}

	raw, err := p.oracle.Complete(ctx, llm.BuildEntityPrompt(preview))
	if err != nil {
		return nil, err
	}
	obj, err := llm.DecodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := llm.ValidateObject(llm.BuildEntitySchema(), obj); err != nil {
		p.logger.Warn("pipeline.ingest.schema_mismatch", "file_name", base, "error", err)
	}

	fundName := llm.TextOr(obj["fund_name"], constants.UnknownFund)
	companyName := llm.TextOr(obj["company_name"], constants.UnknownCompany)

	fund, err := p.resolveFund(ctx, fundName)
	if err != nil {
		return nil, common.WrapError(err, "resolve fund")
	}
	company, err := p.resolveCompany(ctx, companyName)
	if err != nil {
		return nil, common.WrapError(err, "resolve company")
	}

	doc, err := p.docs.Create(ctx, &entity.Document{
		ID:        id,
		FundID:    &fund.ID,
		CompanyID: &company.ID,
		FileName:  base,
		FilePath:  path,
	})
	if err != nil {
		return nil, common.WrapError(err, "create document")
	}

	p.logger.Info("pipeline.ingest.done",
		"document_id", doc.ID,
		"file_name", base,
		"fund", fund.Name,
		"company", company.Name,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}
