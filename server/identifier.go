package server

import (
	uuid "github.com/google/uuid"
)

// IdentifierGenerator produces artifact identifiers
//
//go:generate go tool counterfeiter -o mocks/fake_identifier_generator.go . IdentifierGenerator
type IdentifierGenerator interface {
	// NewID returns an identifier that sorts by creation time and is unique within the process
	NewID() string
}

// UUIDv7Generator issues RFC 9562 version 7 UUIDs: a millisecond timestamp
// followed by random bits, so two IDs minted in the same tick still differ.
type UUIDv7Generator struct{}

var _ IdentifierGenerator = (*UUIDv7Generator)(nil)

// NewIdentifierGenerator creates the default identifier generator
func NewIdentifierGenerator() *UUIDv7Generator {
	return &UUIDv7Generator{}
}

// NewID returns a new UUIDv7 string
func (g *UUIDv7Generator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ValidID reports whether id is a canonical UUID string. Anything else is
// rejected before it is turned into a path.
func ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
