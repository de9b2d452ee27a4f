package id

import (
	"github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator implements the IDGenerator port with random UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
