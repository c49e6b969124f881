package contract

import (
	"fmt"

	"github.com/pkg/errors"

	"pangfa-core/gfa"
)

// ErrCycle is wrapped by every *CycleError.
var ErrCycle = errors.New("mapping does not reach a fixed point")

// CycleError reports a node whose resolution revisited an id (or ran past
// the node-count bound) before reaching its representative.
type CycleError struct {
	ID        gfa.NodeID // node being resolved
	Revisited gfa.NodeID // first id seen twice
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("resolve node %d: revisited node %d: %v", e.ID, e.Revisited, ErrCycle)
}

func (e *CycleError) Unwrap() error { return ErrCycle }

func notFound(id gfa.NodeID) error {
	return &gfa.NotFoundError{What: "node", ID: id}
}
