package types

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a footer contact channel keyed by name (phone/email/social).
type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Contact) TableName() string { return "contact" }
