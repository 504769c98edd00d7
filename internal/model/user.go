package model

import (
	"time"
)

type User struct {
	ID         uint64  `gorm:"primaryKey"`
	Email      *string `gorm:"type:varchar(255);uniqueIndex:idx_email"`
	Password   *string `gorm:"type:varchar(255)"`
	Name       string  `gorm:"type:varchar(100)"`
	Picture    string  `gorm:"type:varchar(512)"`
	Role       string  `gorm:"type:varchar(20);not null;default:'USER'"`
	Provider   string  `gorm:"type:varchar(20);not null;default:'LOCAL'"`
	ProviderID string  `gorm:"type:varchar(255);index:idx_provider_id"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}

// Roles expands the single role column into the JWT roles claim; admins
// retain the USER role implicitly.
func (u *User) Roles() []string {
	if u.Role == "ADMIN" {
		return []string{"USER", "ADMIN"}
	}
	return []string{u.Role}
}
