package gui

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// ID identifies a widget across frames. The UI tree is redeclared every
// frame, so state (window positions, active drags, open headers) is keyed
// by ID and looked up again next frame.
//
// IDs are FNV-1a hashes: deterministic across process restarts so they can
// be persisted. Two logically distinct widgets hashing to the same ID will
// silently share state; the hash is 64-bit so this is vanishingly unlikely,
// and the core does not try to detect it.
type ID uint64

// NewID hashes an arbitrary source string into an ID.
func NewID(source string) ID {
	h := fnv.New64a()
	h.Write([]byte(source))
	return ID(h.Sum64())
}

// IDFromInt hashes an integer (e.g. a loop index) into an ID.
func IDFromInt(n int) ID {
	return NewID(strconv.Itoa(n))
}

// With derives a child ID from this one. The derivation is deterministic,
// so a sub-widget (a resize corner, a move handle) gets a stable identity
// distinct from its parent's.
func (id ID) With(child string) ID {
	h := fnv.New64a()
	var parent [8]byte
	binary.LittleEndian.PutUint64(parent[:], uint64(id))
	h.Write(parent[:])
	h.Write([]byte(child))
	return ID(h.Sum64())
}

// WithInt derives a child ID from an integer key.
func (id ID) WithInt(n int) ID {
	return id.With(strconv.Itoa(n))
}

// BackgroundID is the reserved identity of the whole-screen background region.
func BackgroundID() ID { return NewID("background") }

// TooltipID is the reserved identity shared by tooltips. Tooltips are
// non-interactable, so sharing one identity is harmless.
func TooltipID() ID { return NewID("tooltip") }
