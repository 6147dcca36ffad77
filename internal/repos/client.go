package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type ClientRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Client, error)
  Create(ctx context.Context, tx *gorm.DB, client *types.Client) (*types.Client, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Client) (*types.Client, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type clientRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
  return &clientRepo{db: db, log: baseLog.With("repo", "ClientRepo")}
}

func (r *clientRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Client
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *clientRepo) Create(ctx context.Context, tx *gorm.DB, client *types.Client) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if client.ID == uuid.Nil {
    client.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(client).Error; err != nil {
    return nil, err
  }
  return client, nil
}

func (r *clientRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Client) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Client{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Client
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *clientRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Client{}).Error
}
