package types

import (
	"time"

	"github.com/google/uuid"
)

type Statistic struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Statistic) TableName() string { return "statistic" }
