package types

import (
	"time"

	"github.com/google/uuid"
)

// Possibilitie keeps the original list name from the admin schema.
type Possibilitie struct {
	ID        uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string              `gorm:"column:title;not null" json:"title"`
	Text      string              `gorm:"column:text;not null" json:"text"`
	Points    []PossibilitiePoint `gorm:"constraint:OnDelete:CASCADE;foreignKey:PossibilitieID;references:ID" json:"points"`
	CreatedAt time.Time           `gorm:"not null;default:now()" json:"createdAt"`
}

func (Possibilitie) TableName() string { return "possibilitie" }

type PossibilitiePoint struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name           string     `gorm:"column:name;not null" json:"name"`
	PossibilitieID *uuid.UUID `gorm:"type:uuid;index" json:"possibilitieId,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:now()" json:"createdAt"`
}

func (PossibilitiePoint) TableName() string { return "possibilitie_point" }
