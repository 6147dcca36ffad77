package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type StatisticRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Statistic, error)
  Create(ctx context.Context, tx *gorm.DB, statistic *types.Statistic) (*types.Statistic, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Statistic) (*types.Statistic, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type statisticRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStatisticRepo(db *gorm.DB, baseLog *logger.Logger) StatisticRepo {
  return &statisticRepo{db: db, log: baseLog.With("repo", "StatisticRepo")}
}

func (r *statisticRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Statistic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Statistic
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *statisticRepo) Create(ctx context.Context, tx *gorm.DB, statistic *types.Statistic) (*types.Statistic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if statistic.ID == uuid.Nil {
    statistic.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(statistic).Error; err != nil {
    return nil, err
  }
  return statistic, nil
}

func (r *statisticRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Statistic) (*types.Statistic, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Statistic{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Statistic
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *statisticRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Statistic{}).Error
}
