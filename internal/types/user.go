package types

import (
	"time"

	"github.com/google/uuid"
)

// User is the authentication principal for the content service admin.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (User) TableName() string { return "user" }
