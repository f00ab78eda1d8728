package avltree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avltree: invalid configuration")
	// ErrKeyNotFound signals a lookup miss on the asserting lookup path.
	ErrKeyNotFound = errors.New("avltree: key not found")
	// ErrInvariant signals a violated structural tree invariant.
	ErrInvariant = errors.New("avltree: invariant violated")
)
