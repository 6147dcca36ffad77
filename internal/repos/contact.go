package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

type ContactRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]types.Contact, error)
  Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error)
  Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Contact) (*types.Contact, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type contactRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
  return &contactRepo{db: db, log: baseLog.With("repo", "ContactRepo")}
}

func (r *contactRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []types.Contact
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.Contact) (*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if contact.ID == uuid.Nil {
    contact.ID = uuid.New()
  }
  if err := transaction.WithContext(ctx).Create(contact).Error; err != nil {
    return nil, err
  }
  return contact, nil
}

func (r *contactRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, data *types.Contact) (*types.Contact, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Model(&types.Contact{}).
    Where("id = ?", id).
    Updates(data).Error; err != nil {
    return nil, err
  }
  var out types.Contact
  if err := transaction.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *contactRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Contact{}).Error
}
