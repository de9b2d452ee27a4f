package model

import (
	"time"
)

// UserAccount represents the database model for accounts
type UserAccount struct {
	ID           string    `gorm:"primaryKey;size:64"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	DisplayName  string    `gorm:"size:255"`
	PasswordHash string    `gorm:"not null;size:255"`
	Role         string    `gorm:"not null;size:20;default:donor"`
	TotalDonated int64     `gorm:"not null;default:0"` // Running total in centavos
	CreatedAt    time.Time `gorm:"not null;index"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserAccount
func (UserAccount) TableName() string {
	return "users"
}
