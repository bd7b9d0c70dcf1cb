package core

// KeyValueStore is the persistent storage capability the engine depends on
// but does not implement: a durable string-keyed map scoped to one
// deployment.
//
// Every mutating operation in this package is a read-entire-collection,
// modify-in-memory, write-entire-collection-back cycle against this port.
// There is no transaction and no compare-and-swap: two concurrent writers
// against the same backing store can interleave and the last write wins.
// That non-atomicity is part of the system's observable contract; adapters
// must not add merging or conflict detection on their own.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
