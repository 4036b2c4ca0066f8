package blockgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBlock is returned when a nil block is inserted.
	ErrNilBlock = errors.New("block must not be nil")

	// ErrAlreadyRegistered is returned when a block is inserted a second time.
	ErrAlreadyRegistered = errors.New("block already registered")

	// ErrGraphFull is returned when the graph holds MaxBlockID+1 blocks.
	ErrGraphFull = errors.New("graph is full")
)

// ErrOwned indicates a block that is already owned by a graph.
//
// It unwraps to ErrAlreadyRegistered.
type ErrOwned struct {
	Name string

	// SameGraph is true when the owner is the graph the insert was attempted on.
	SameGraph bool
}

func (e *ErrOwned) Error() string {
	if e.SameGraph {
		return fmt.Sprintf("block %q already registered with this graph", e.Name)
	}
	return fmt.Sprintf("block %q already registered with another graph", e.Name)
}

func (e *ErrOwned) Unwrap() error { return ErrAlreadyRegistered }
