package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entcorr "github.com/hunggoodkidz/data-extraction-module/gen/ent/correction"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type CorrectionRepository interface {
	Create(ctx context.Context, c *entity.Correction) (*entity.Correction, error)
	ListByField(ctx context.Context, extractedFieldID uuid.UUID) ([]*entity.Correction, error)
}

type correctionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCorrectionRepository(client *ent.Client, logger *slog.Logger) CorrectionRepository {
	return &correctionRepository{client: client, logger: logger}
}

func (r *correctionRepository) Create(ctx context.Context, c *entity.Correction) (*entity.Correction, error) {
	row, err := r.client.Correction.Create().
		SetExtractedFieldID(c.ExtractedFieldID).
		SetCorrectedValue(c.CorrectedValue).
		SetNillableCorrectedByUser(c.CorrectedByUser).
		SetNillableReason(c.Reason).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create correction", "extracted_field_id", c.ExtractedFieldID, "error", err)
		return nil, err
	}
	return toCorrection(row), nil
}

func (r *correctionRepository) ListByField(ctx context.Context, extractedFieldID uuid.UUID) ([]*entity.Correction, error) {
	rows, err := r.client.Correction.Query().
		Where(entcorr.ExtractedFieldID(extractedFieldID)).
		Order(entcorr.ByCorrectedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list corrections", "extracted_field_id", extractedFieldID, "error", err)
		return nil, err
	}
	result := make([]*entity.Correction, len(rows))
	for i, row := range rows {
		result[i] = toCorrection(row)
	}
	return result, nil
}

func toCorrection(e *ent.Correction) *entity.Correction {
	return &entity.Correction{
		ID:               e.ID,
		ExtractedFieldID: e.ExtractedFieldID,
		CorrectedValue:   e.CorrectedValue,
		CorrectedByUser:  e.CorrectedByUser,
		Reason:           e.Reason,
		CorrectedAt:      e.CorrectedAt,
	}
}
