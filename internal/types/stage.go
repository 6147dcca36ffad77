package types

import (
	"time"

	"github.com/google/uuid"
)

// Stage is one step of the engagement timeline. Happening holds the
// "what happens here" bullet points.
type Stage struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string       `gorm:"column:title;not null" json:"title"`
	Text      string       `gorm:"column:text;not null" json:"text"`
	Happening []StagePoint `gorm:"constraint:OnDelete:CASCADE;foreignKey:StageID;references:ID" json:"happening"`
	CreatedAt time.Time    `gorm:"not null;default:now()" json:"createdAt"`
}

func (Stage) TableName() string { return "stage" }

type StagePoint struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	StageID   *uuid.UUID `gorm:"type:uuid;index" json:"stageId,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"createdAt"`
}

func (StagePoint) TableName() string { return "stage_point" }
