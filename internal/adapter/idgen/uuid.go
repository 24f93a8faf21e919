package idgen

import (
	"github.com/google/uuid"

	"todolist/internal/core/ports"
)

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

var _ ports.IDGenerator = UUIDGenerator{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
