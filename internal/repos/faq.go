package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type FaqRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Faq, error)
  Create(ctx context.Context, tx *gorm.DB, faq *types.Faq) (*types.Faq, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Faq) (*types.Faq, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type faqRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewFaqRepo(db *gorm.DB, baseLog *logger.Logger) FaqRepo {
  return &faqRepo{db: db, log: baseLog.With("repo", "FaqRepo")}
}

func (r *faqRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Faq, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Faq
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *faqRepo) Create(ctx context.Context, tx *gorm.DB, faq *types.Faq) (*types.Faq, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if faq.ID == uuid.Nil {
    faq.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(faq).Error; err != nil {
    return nil, err
  }
  return faq, nil
}

func (r *faqRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Faq) (*types.Faq, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Faq{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Faq
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *faqRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Faq{}).Error
}
