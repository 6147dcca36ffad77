package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type AboutRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.About, error)
  Create(ctx context.Context, tx *gorm.DB, about *types.About) (*types.About, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.About) (*types.About, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type aboutRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAboutRepo(db *gorm.DB, baseLog *logger.Logger) AboutRepo {
  return &aboutRepo{db: db, log: baseLog.With("repo", "AboutRepo")}
}

func (r *aboutRepo) List(ctx context.Context, tx *gorm.DB) ([]types.About, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.About
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *aboutRepo) Create(ctx context.Context, tx *gorm.DB, about *types.About) (*types.About, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if about.ID == uuid.Nil {
    about.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(about).Error; err != nil {
    return nil, err
  }
  return about, nil
}

func (r *aboutRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.About) (*types.About, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.About{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.About
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *aboutRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.About{}).Error
}
