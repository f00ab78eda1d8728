package avltree

import "fmt"

// Config configures the key order of a tree.
type Config[K any] struct {
	// Compare is a total order on keys. It returns a negative number if a < b,
	// zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: key comparison is required", ErrInvalidConfig)
	}
	return nil
}
