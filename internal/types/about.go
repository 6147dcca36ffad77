package types

import (
	"time"

	"github.com/google/uuid"
)

type About struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (About) TableName() string { return "about" }
