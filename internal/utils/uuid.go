package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered UUIDv7 identifiers for locally captured
// records. The v7 time prefix keeps the queue's primary key roughly in
// capture order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
