package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
)

// Generator issues random (v4) identifiers for users, products and reactions.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// IsValid reports whether s parses as a UUID. Path IDs are checked with it
// before they reach the store.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)
