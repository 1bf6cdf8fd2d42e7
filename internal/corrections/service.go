package corrections

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
	"github.com/hunggoodkidz/data-extraction-module/internal/repository"
)

// Service records manual overrides against extracted fields. Corrections
// never mutate the extracted row itself; they accumulate alongside it as
// an audit trail.
type Service struct {
	fields      repository.ExtractedFieldRepository
	corrections repository.CorrectionRepository
	logger      *slog.Logger
}

func NewService(
	fields repository.ExtractedFieldRepository,
	corrections repository.CorrectionRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fields: fields, corrections: corrections, logger: logger}
}

// Record stores a correction for an existing extracted field. The field
// must exist; the corrected value must be non-empty.
func (s *Service) Record(ctx context.Context, fieldID uuid.UUID, value string, user, reason *string) (*entity.Correction, error) {
	if strings.TrimSpace(value) == "" {
		return nil, common.NewAppError("EMPTY_CORRECTION",
			"corrected value must not be empty", common.ErrValidation)
	}
	field, err := s.fields.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	c, err := s.corrections.Create(ctx, &entity.Correction{
		ExtractedFieldID: field.ID,
		CorrectedValue:   value,
		CorrectedByUser:  user,
		Reason:           reason,
	})
	if err != nil {
		return nil, common.WrapError(err, "create correction")
	}

	s.logger.Info("corrections.recorded",
		"extracted_field_id", field.ID,
		"field_name", field.FieldName,
		"correction_id", c.ID,
	)
	return c, nil
}

// List returns the corrections recorded for a field, oldest first.
func (s *Service) List(ctx context.Context, fieldID uuid.UUID) ([]*entity.Correction, error) {
	if _, err := s.fields.GetByID(ctx, fieldID); err != nil {
		return nil, err
	}
	return s.corrections.ListByField(ctx, fieldID)
}
