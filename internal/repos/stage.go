package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type StageRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Stage, error)
  Create(ctx context.Context, tx *gorm.DB, stage *types.Stage) (*types.Stage, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Stage) (*types.Stage, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type stageRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStageRepo(db *gorm.DB, baseLog *logger.Logger) StageRepo {
  return &stageRepo{db: db, log: baseLog.With("repo", "StageRepo")}
}

func (r *stageRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Stage, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Stage
  if err := transaction.WithContext(ctx).
    Preload("Happening").
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *stageRepo) Create(ctx context.Context, tx *gorm.DB, stage *types.Stage) (*types.Stage, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if stage.ID == uuid.Nil {
    stage.ID = uuid.New()
  }
  for i := range stage.Happening {
    if stage.Happening[i].ID == uuid.Nil {
      stage.Happening[i].ID = uuid.New()
    }
  }
  if err := transaction.WithContext(ctx).Create(stage).Error; err != nil {
    return nil, err
  }
  return stage, nil
}

func (r *stageRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Stage) (*types.Stage, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  points := data.Happening
  data.Happening = nil
  if err := transaction.WithContext(ctx).
    Model(&types.Stage{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  if points != nil {
    if err := transaction.WithContext(ctx).
      Where("stage_id = ?", id).
      Delete(&types.StagePoint{}).Error; err != nil {
      return nil, err
    }
    for i := range points {
      if points[i].ID == uuid.Nil {
        points[i].ID = uuid.New()
      }
      parentID := id
      points[i].StageID = &parentID
    }
    if len(points) > 0 {
      if err := transaction.WithContext(ctx).Create(&points).Error; err != nil {
        return nil, err
      }
    }
  }
  var out types.Stage
  if err := transaction.WithContext(ctx).
    Preload("Happening").
    First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *stageRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Where("stage_id = ?", id).
    Delete(&types.StagePoint{}).Error; err != nil {
    return err
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Stage{}).Error
}
