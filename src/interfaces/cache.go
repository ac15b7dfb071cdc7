package interfaces

import "time"

// -----------------------------------------------------------------------------
// ICache defines the contract for the TTL cache.
//
// The cache is best-effort: implementations never surface storage failures to
// callers. A failed read is a miss, a failed write is a no-op. Stale or
// corrupt entries read as misses and may be deleted eagerly.
// -----------------------------------------------------------------------------

type ICache interface {

	// Read returns the payload stored under key and the instant it was
	// written, or ok=false when the entry is absent, older than ttl, or
	// cannot be deserialized.
	Read(key string, ttl time.Duration) (payload []byte, writtenAt time.Time, ok bool)

	// -----------------------------------------------------------------------------

	// Write stores payload under key stamped with the current instant,
	// overwriting any prior entry and creating storage structure on demand.
	Write(key string, payload []byte)

	// -----------------------------------------------------------------------------

	// Close releases the backing store.
	Close() error
}
