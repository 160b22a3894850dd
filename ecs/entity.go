package ecs

import "sync/atomic"

// EntityID is a unique identifier for an entity and the handle the
// render collaborators key their visuals by
type EntityID uint64

var nextEntityID uint64 = 0

// NewEntityID generates a new unique entity ID
func NewEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// IDAllocator issues entity IDs from its own counter so that separate
// simulations (and tests) get reproducible handles
type IDAllocator struct {
	next uint64
}

// Next returns the next unused ID, starting at 1
func (a *IDAllocator) Next() EntityID {
	if a == nil {
		return NewEntityID()
	}
	a.next++
	return EntityID(a.next)
}
