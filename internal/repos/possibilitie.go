package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type PossibilitieRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Possibilitie, error)
  Create(ctx context.Context, tx *gorm.DB, possibilitie *types.Possibilitie) (*types.Possibilitie, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Possibilitie) (*types.Possibilitie, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type possibilitieRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPossibilitieRepo(db *gorm.DB, baseLog *logger.Logger) PossibilitieRepo {
  return &possibilitieRepo{db: db, log: baseLog.With("repo", "PossibilitieRepo")}
}

func (r *possibilitieRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Possibilitie, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Possibilitie
  if err := transaction.WithContext(ctx).
    Preload("Points").
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *possibilitieRepo) Create(ctx context.Context, tx *gorm.DB, possibilitie *types.Possibilitie) (*types.Possibilitie, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if possibilitie.ID == uuid.Nil {
    possibilitie.ID = uuid.New()
  }
  for i := range possibilitie.Points {
    if possibilitie.Points[i].ID == uuid.Nil {
      possibilitie.Points[i].ID = uuid.New()
    }
  }
  if err := transaction.WithContext(ctx).Create(possibilitie).Error; err != nil {
    return nil, err
  }
  return possibilitie, nil
}

// Update replaces the point set wholesale when Points is provided. The admin
// editor always submits the full card list, so a diff is not needed.
func (r *possibilitieRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Possibilitie) (*types.Possibilitie, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  points := data.Points
  data.Points = nil
  if err := transaction.WithContext(ctx).
    Model(&types.Possibilitie{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  if points != nil {
    if err := transaction.WithContext(ctx).
      Where("possibilitie_id = ?", id).
      Delete(&types.PossibilitiePoint{}).Error; err != nil {
      return nil, err
    }
    for i := range points {
      if points[i].ID == uuid.Nil {
        points[i].ID = uuid.New()
      }
      parentID := id
      points[i].PossibilitieID = &parentID
    }
    if len(points) > 0 {
      if err := transaction.WithContext(ctx).Create(&points).Error; err != nil {
        return nil, err
      }
    }
  }
  var out types.Possibilitie
  if err := transaction.WithContext(ctx).
    Preload("Points").
    First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *possibilitieRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Where("possibilitie_id = ?", id).
    Delete(&types.PossibilitiePoint{}).Error; err != nil {
    return err
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Possibilitie{}).Error
}
