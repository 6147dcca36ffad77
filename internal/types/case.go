package types

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Direction string    `gorm:"column:direction;not null" json:"direction"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Text      string    `gorm:"column:text;not null" json:"text"`
	Solution  string    `gorm:"column:solution" json:"solution,omitempty"`
	Effect    string    `gorm:"column:effect" json:"effect,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Case) TableName() string { return "case" }
