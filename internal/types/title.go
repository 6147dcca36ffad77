package types

import (
	"time"

	"github.com/google/uuid"
)

// Title carries the headline copy of a landing section. Name is the slot key
// ("hero", "about", ...) the renderer looks the record up by.
type Title struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;index" json:"name"`
	Details     string    `gorm:"column:details" json:"details,omitempty"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Title) TableName() string { return "title" }
