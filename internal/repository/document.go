package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hunggoodkidz/data-extraction-module/gen/ent"
	entdoc "github.com/hunggoodkidz/data-extraction-module/gen/ent/document"
	"github.com/hunggoodkidz/data-extraction-module/internal/common"
	"github.com/hunggoodkidz/data-extraction-module/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context) ([]*entity.Document, error)
	// SetCompany back-links a document to a company, overwriting any
	// prior link.
	SetCompany(ctx context.Context, id, companyID uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	row, err := r.client.Document.Create().
		SetID(doc.ID).
		SetNillableFundID(doc.FundID).
		SetNillableCompanyID(doc.CompanyID).
		SetFileName(doc.FileName).
		SetFilePath(doc.FilePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "file_name", doc.FileName, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND", "document "+id.String(), common.ErrNotFound)
		}
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepository) List(ctx context.Context) ([]*entity.Document, error) {
	rows, err := r.client.Document.Query().
		Order(entdoc.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = toDocument(row)
	}
	return result, nil
}

func (r *documentRepository) SetCompany(ctx context.Context, id, companyID uuid.UUID) error {
	err := r.client.Document.UpdateOneID(id).
		SetCompanyID(companyID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("DOCUMENT_NOT_FOUND", "document "+id.String(), common.ErrNotFound)
		}
		r.logger.Error("failed to link document to company", "document_id", id, "company_id", companyID, "error", err)
		return err
	}
	return nil
}

func toDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:         e.ID,
		FundID:     e.FundID,
		CompanyID:  e.CompanyID,
		FileName:   e.FileName,
		FilePath:   e.FilePath,
		UploadedAt: e.UploadedAt,
	}
}
