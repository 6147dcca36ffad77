package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type DocumentRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Document, error)
  GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Document, error)
  Create(ctx context.Context, tx *gorm.DB, document *types.Document) (*types.Document, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Document) (*types.Document, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type documentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
  return &documentRepo{db: db, log: baseLog.With("repo", "DocumentRepo")}
}

func (r *documentRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Document, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Document
  if err := transaction.WithContext(ctx).
    Order("updated_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetBySlug resolves by first match. Slug uniqueness is indexed, but a nil
// result (not an error) signals "fall back to the hardcoded document".
func (r *documentRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Document, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var out types.Document
  err := transaction.WithContext(ctx).First(&out, "slug = ?", slug).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *documentRepo) Create(ctx context.Context, tx *gorm.DB, document *types.Document) (*types.Document, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if document.ID == uuid.Nil {
    document.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(document).Error; err != nil {
    return nil, err
  }
  return document, nil
}

func (r *documentRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Document) (*types.Document, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Document{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Document
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *documentRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Document{}).Error
}
