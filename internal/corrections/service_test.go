package corrections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type memFields struct {
	rows map[uuid.UUID]*entity.ExtractedField
}

func (m *memFields) Append(_ context.Context, f *entity.ExtractedField) (*entity.ExtractedField, error) {
	cp := *f
	cp.ID = uuid.New()
	m.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memFields) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractedField, error) {
	f, ok := m.rows[id]
	if !ok {
		return nil, common.NewAppError("FIELD_NOT_FOUND", "extracted field "+id.String(), common.ErrNotFound)
	}
	out := *f
	return &out, nil
}

func (m *memFields) ListByDocument(context.Context, uuid.UUID) ([]*entity.ExtractedField, error) {
	return nil, nil
}

type memCorrections struct {
	rows []*entity.Correction
}

func (m *memCorrections) Create(_ context.Context, c *entity.Correction) (*entity.Correction, error) {
	cp := *c
	cp.ID = uuid.New()
	cp.CorrectedAt = time.Now()
	m.rows = append(m.rows, &cp)
	out := cp
	return &out, nil
}

func (m *memCorrections) ListByField(_ context.Context, fieldID uuid.UUID) ([]*entity.Correction, error) {
	var out []*entity.Correction
	for _, c := range m.rows {
		if c.ExtractedFieldID == fieldID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *memFields, *memCorrections) {
	t.Helper()
	fields := &memFields{rows: map[uuid.UUID]*entity.ExtractedField{}}
	corrs := &memCorrections{}
	return NewService(fields, corrs, nil), fields, corrs
}

func seedField(t *testing.T, fields *memFields) *entity.ExtractedField {
	t.Helper()
	f, err := fields.Append(context.Background(), &entity.ExtractedField{
		DocumentID:     uuid.New(),
		FieldName:      "raw_text",
		ExtractedValue: "Revnue was 1200",
	})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRecord(t *testing.T) {
	svc, fields, corrs := newTestService(t)
	field := seedField(t, fields)

	user := "reviewer"
	reason := "OCR typo"
	c, err := svc.Record(context.Background(), field.ID, "Revenue was 1200", &user, &reason)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ExtractedFieldID != field.ID {
		t.Error("correction not attached to field")
	}
	if c.CorrectedByUser == nil || *c.CorrectedByUser != "reviewer" {
		t.Errorf("user %v", c.CorrectedByUser)
	}
	if len(corrs.rows) != 1 {
		t.Fatalf("expected 1 correction, got %d", len(corrs.rows))
	}
	// the extracted row itself is untouched
	got, _ := fields.GetByID(context.Background(), field.ID)
	if got.ExtractedValue != "Revnue was 1200" {
		t.Error("correction mutated the extracted field")
	}
}

func TestRecordAccumulates(t *testing.T) {
	svc, fields, _ := newTestService(t)
	field := seedField(t, fields)

	if _, err := svc.Record(context.Background(), field.ID, "first pass", nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Record(context.Background(), field.ID, "second pass", nil, nil); err != nil {
		t.Fatal(err)
	}
	list, err := svc.List(context.Background(), field.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 corrections, got %d", len(list))
	}
}

func TestRecordUnknownField(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Record(context.Background(), uuid.New(), "value", nil, nil)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecordEmptyValue(t *testing.T) {
	svc, fields, _ := newTestService(t)
	field := seedField(t, fields)
	_, err := svc.Record(context.Background(), field.ID, "   ", nil, nil)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListUnknownField(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.List(context.Background(), uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
