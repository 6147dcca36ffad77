package types

import (
	"time"

	"github.com/google/uuid"
)

type Faq struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Question  string    `gorm:"column:question;not null" json:"question"`
	Answer    string    `gorm:"column:answer;not null" json:"answer"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Faq) TableName() string { return "faq" }
