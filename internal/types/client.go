package types

import (
	"time"

	"github.com/google/uuid"
)

// Client is a lead captured from the public contact form. Creation is open
// to the public, everything else requires an admin session.
type Client struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Phone         string    `gorm:"column:phone;not null" json:"phone"`
	Question      string    `gorm:"column:question" json:"question,omitempty"`
	ContactMethod string    `gorm:"column:contact_method" json:"contactMethod,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Client) TableName() string { return "client" }
