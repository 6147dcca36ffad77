package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type CaseRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Case, error)
  Create(ctx context.Context, tx *gorm.DB, caseBlock *types.Case) (*types.Case, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Case) (*types.Case, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type caseRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCaseRepo(db *gorm.DB, baseLog *logger.Logger) CaseRepo {
  return &caseRepo{db: db, log: baseLog.With("repo", "CaseRepo")}
}

func (r *caseRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Case, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Case
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *caseRepo) Create(ctx context.Context, tx *gorm.DB, caseBlock *types.Case) (*types.Case, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if caseBlock.ID == uuid.Nil {
    caseBlock.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(caseBlock).Error; err != nil {
    return nil, err
  }
  return caseBlock, nil
}

func (r *caseRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Case) (*types.Case, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Case{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Case
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *caseRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Case{}).Error
}
