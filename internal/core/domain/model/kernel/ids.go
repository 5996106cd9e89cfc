package kernel

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// IDGenerator is the identifier-generation capability used by aggregates that
// mint their own identities (orders, items, customers). Production code uses
// RandomIDGenerator; tests inject SequentialIDGenerator to get deterministic
// identifiers.
type IDGenerator interface {
	// Next returns a fresh, valid UUID. Implementations must never return
	// a zero-value UUID.
	Next() UUID
}

// RandomIDGenerator produces random version 4 UUIDs. It is stateless and safe
// to share between callers.
type RandomIDGenerator struct{}

// NewRandomIDGenerator creates the production identifier generator.
func NewRandomIDGenerator() RandomIDGenerator {
	return RandomIDGenerator{}
}

// Next returns a new random UUID.
func (RandomIDGenerator) Next() UUID {
	return NewUUID()
}

// SequentialIDGenerator produces deterministic UUIDs whose trailing bytes
// encode an incrementing counter starting at 1. It exists for tests and
// demonstrations where identifier values must be predictable. It is not safe
// for concurrent use.
type SequentialIDGenerator struct {
	counter uint64
}

// NewSequentialIDGenerator creates a deterministic generator starting at 1.
func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{}
}

// Next returns the next UUID in the sequence.
func (g *SequentialIDGenerator) Next() UUID {
	g.counter++

	var b [16]byte
	binary.BigEndian.PutUint64(b[8:], g.counter)
	id, err := uuid.FromBytes(b[:])
	if err != nil {
		// 16 bytes always form a UUID; FromBytes only rejects wrong lengths.
		panic(err)
	}
	return UUID{id: id}
}
