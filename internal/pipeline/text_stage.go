package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/constants"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

// TextResult summarizes one raw-text acquisition run.
type TextResult struct {
	Pages    int
	Method   string
	Warnings []string
}

// ExtractRawText runs full text acquisition for a registered document and
// appends one raw_text row per page. Runs are additive: extracting twice
// doubles the rows, it never replaces them.
func (p *Processor) ExtractRawText(ctx context.Context, documentID uuid.UUID) (*TextResult, error) {
	start := time.Now()

	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	res, err := p.text.Extract(ctx, doc.FilePath)
	if err != nil {
		return nil, common.WrapError(err, "extract text")
	}
	for _, w := range res.Warnings {
		p.logger.Warn("pipeline.text.warning", "document_id", documentID, "warning", w)
	}

	for _, page := range res.Pages {
		n := page.Number
		_, err := p.fields.Append(ctx, &entity.ExtractedField{
			DocumentID:     documentID,
			FieldName:      constants.RawTextField,
			ExtractedValue: page.Text,
			PageNumber:     &n,
		})
		if err != nil {
			return nil, common.WrapError(err, "append raw text page")
		}
	}

	p.logger.Info("pipeline.text.done",
		"document_id", documentID,
		"method", res.Method,
		"pages", len(res.Pages),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &TextResult{
		Pages:    len(res.Pages),
		Method:   res.Method,
		Warnings: res.Warnings,
	}, nil
}

// rawText gathers the accumulated raw_text rows for a document in page
// order and enforces the precondition shared by the structured stages:
// no stored text means no oracle call.
func (p *Processor) rawText(ctx context.Context, documentID uuid.UUID) (string, error) {
	rows, err := p.fields.ListByDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	var parts []string
	for _, row := range rows {
		if row.FieldName != constants.RawTextField {
			continue
		}
		parts = append(parts, row.ExtractedValue)
	}
	if len(parts) == 0 {
		return "", common.NewAppError("NO_RAW_TEXT",
			"document "+documentID.String()+" has no extracted text; run text acquisition first",
			common.ErrPrecondition)
	}
	return strings.Join(parts, "\n"), nil
}
