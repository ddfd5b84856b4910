package engine

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/mathgrid/internal/node"
)

var (
	// ErrUnresolved is returned when a node cannot reach the literal state.
	ErrUnresolved = errors.New("could not resolve")
	// ErrUnknownRoot is returned when the requested root was never declared.
	ErrUnknownRoot = errors.New("unknown root")
)

// UnresolvedError names the node that could not be resolved and the node
// that blocked it.
type UnresolvedError struct {
	ID      string // node that was requested or needed
	Blocker string // node with no value, may equal ID
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	if e.Blocker == "" || e.Blocker == e.ID {
		return fmt.Sprintf("%v `%s`", ErrUnresolved, e.ID)
	}
	return fmt.Sprintf("%v `%s`: `%s` has no value", ErrUnresolved, e.ID, e.Blocker)
}

// Unwrap returns ErrUnresolved.
func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

// EvalError reports an operator node whose operation failed.
type EvalError struct {
	ID  string
	Op  node.Op
	Err error
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating `%s` (%s): %v", e.ID, e.Op.Symbol(), e.Err)
}

// Unwrap returns the underlying error.
func (e *EvalError) Unwrap() error {
	return e.Err
}
