package model

import (
	"time"
)

// DonationEvent represents the database model for the append-only ledger
type DonationEvent struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	EventID        string    `gorm:"uniqueIndex;not null;size:64"`
	DonorID        string    `gorm:"not null;index;size:64"`
	Amount         string    `gorm:"not null;size:50"`
	AmountCentavos int64     `gorm:"not null"`
	Category       string    `gorm:"not null;index;size:50"`
	Method         string    `gorm:"not null;size:50"`
	Status         string    `gorm:"not null;size:20"`
	CreatedAt      time.Time `gorm:"not null;index"`
	ProcessedAt    *time.Time
	ResultTotal    string `gorm:"size:50"`
	ErrorMessage   string `gorm:"type:text"`

	Donor UserAccount `gorm:"foreignKey:DonorID;references:ID"`
}

// TableName specifies the table name for DonationEvent
func (DonationEvent) TableName() string {
	return "donation_events"
}
