package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document is a legal page (privacy policy, consent) keyed by slug. Content
// holds the rich-text node tree produced by the admin editor.
type Document struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Slug        string         `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Description string         `gorm:"column:description" json:"description,omitempty"`
	Content     datatypes.JSON `gorm:"column:content" json:"content,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Document) TableName() string { return "document" }
