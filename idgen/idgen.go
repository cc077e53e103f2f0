// Package idgen mints the 96-bit object ids pbxproj documents use to
// link objects together: a process-wide monotonic local counter paired
// with a per-document random salt, rendered as 24 uppercase hex digits.
package idgen

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bitrise-tools/xcode-project-gen/serialized"
	"github.com/pkg/errors"
)

// counter is the process-wide monotonic local-id counter described in
// spec §4.A/§5. It is mutated only from Allocator.Mint (via nextLocal)
// and is not guarded by any lock; concurrent callers must serialize Mint
// themselves.
var counter uint32

// Allocator mints ids that all share one document's random salt. A
// fresh Allocator is created once per document, at root-object creation;
// every descendant object mints through the same Allocator so its ids
// share the root's salt, as spec §4.A requires.
type Allocator struct {
	salt [8]byte
}

// NewAllocator generates a fresh, nondeterministic 8-byte salt and
// returns an Allocator scoped to it. Drawing the salt from crypto/rand
// keeps ids (and therefore project salts) from colliding across runs.
func NewAllocator() (*Allocator, error) {
	var a Allocator
	if _, err := rand.Read(a.salt[:]); err != nil {
		return nil, errors.Wrap(err, "idgen: generating project salt")
	}
	return &a, nil
}

// Mint allocates the next id under this allocator's salt, attaching
// comment as its pretty-printing label.
func (a *Allocator) Mint(comment string) serialized.ID {
	local := nextLocal()
	var id serialized.ID
	binary.BigEndian.PutUint32(id.Bytes[0:4], local)
	copy(id.Bytes[4:12], a.salt[:])
	id.Comment = comment
	return id
}

func nextLocal() uint32 {
	// A plain increment (not atomic.AddUint32) is sufficient per §5:
	// the system is single-threaded and object creation is documented
	// as non-reentrant. A concurrent caller must serialize Mint calls
	// itself or wrap this package.
	v := counter
	counter++
	return v
}

// Reset zeroes the process-wide counter. Exists only for deterministic
// tests; production callers never need it since the counter only needs
// to be unique within a single minted document's lifetime.
func Reset() {
	counter = 0
}
