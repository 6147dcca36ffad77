package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type UserRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.User, error)
  Count(ctx context.Context, tx *gorm.DB) (int64, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
  Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.User) (*types.User, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) List(ctx context.Context, tx *gorm.DB) ([]types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.User
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *userRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var out types.User
  err := transaction.WithContext(ctx).First(&out, "email = ?", email).Error
  if errors.Is(err, gorm.ErrRecordNotFound) {
    return nil, nil
  }
  if err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if user.ID == uuid.Nil {
    user.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
    return nil, err
  }
  return user, nil
}

func (r *userRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.User{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.User
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *userRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.User{}).Error
}
