package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type TitleRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Title, error)
  Create(ctx context.Context, tx *gorm.DB, title *types.Title) (*types.Title, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Title) (*types.Title, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type titleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTitleRepo(db *gorm.DB, baseLog *logger.Logger) TitleRepo {
  return &titleRepo{db: db, log: baseLog.With("repo", "TitleRepo")}
}

func (r *titleRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Title, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Title
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *titleRepo) Create(ctx context.Context, tx *gorm.DB, title *types.Title) (*types.Title, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if title.ID == uuid.Nil {
    title.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(title).Error; err != nil {
    return nil, err
  }
  return title, nil
}

func (r *titleRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Title) (*types.Title, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Title{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Title
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *titleRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Title{}).Error
}
