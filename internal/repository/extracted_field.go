package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entfield "github.com/hunggoodkidz/data-extraction-module/gen/ent/extractedfield"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

// ExtractedFieldRepository is append-only: repeated extraction runs for a
// document accumulate rows, they never replace them.
type ExtractedFieldRepository interface {
	Append(ctx context.Context, f *entity.ExtractedField) (*entity.ExtractedField, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractedField, error)
	// ListByDocument returns rows in page-number order.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedField, error)
}

type extractedFieldRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewExtractedFieldRepository(client *ent.Client, logger *slog.Logger) ExtractedFieldRepository {
	return &extractedFieldRepository{client: client, logger: logger}
}

func (r *extractedFieldRepository) Append(ctx context.Context, f *entity.ExtractedField) (*entity.ExtractedField, error) {
	row, err := r.client.ExtractedField.Create().
		SetDocumentID(f.DocumentID).
		SetFieldName(f.FieldName).
		SetExtractedValue(f.ExtractedValue).
		SetNillablePageNumber(f.PageNumber).
		SetNillableConfidenceScore(f.ConfidenceScore).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append extracted field",
			"document_id", f.DocumentID, "field_name", f.FieldName, "error", err)
		return nil, err
	}
	return toExtractedField(row), nil
}

func (r *extractedFieldRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractedField, error) {
	row, err := r.client.ExtractedField.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("FIELD_NOT_FOUND", "extracted field "+id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toExtractedField(row), nil
}

func (r *extractedFieldRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractedField, error) {
	rows, err := r.client.ExtractedField.Query().
		Where(entfield.DocumentID(documentID)).
		Order(entfield.ByPageNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extracted fields", "document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]*entity.ExtractedField, len(rows))
	for i, row := range rows {
		result[i] = toExtractedField(row)
	}
	return result, nil
}

func toExtractedField(e *ent.ExtractedField) *entity.ExtractedField {
	return &entity.ExtractedField{
		ID:              e.ID,
		DocumentID:      e.DocumentID,
		FieldName:       e.FieldName,
		ExtractedValue:  e.ExtractedValue,
		PageNumber:      e.PageNumber,
		ConfidenceScore: e.ConfidenceScore,
		CreatedAt:       e.CreatedAt,
	}
}
