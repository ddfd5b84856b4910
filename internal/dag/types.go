package dag

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/mathgrid/internal/node"
)

var (
	// ErrDuplicateIdentifier is returned when two lines declare the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrUnknownIdentifier is returned when an operand (or override) names an
	// identifier that was never declared.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrCycle is returned when the declarations reference each other in a loop.
	ErrCycle = errors.New("cyclic reference")
	// ErrMalformedOperator is returned when an operator node's edges do not
	// cover positions 0 and 1 exactly once.
	ErrMalformedOperator = errors.New("malformed operator node")
)

// PlaceholderPolicy decides how undeclared operand identifiers are handled.
type PlaceholderPolicy int

const (
	// PlaceholderReject fails the build with ErrUnknownIdentifier.
	PlaceholderReject PlaceholderPolicy = iota
	// PlaceholderCreate adds an unresolved node labelled with the operand's
	// identifier. Operators depending on it never resolve.
	PlaceholderCreate
)

// ParsePlaceholderPolicy converts the configuration spelling of a policy.
func ParsePlaceholderPolicy(s string) (PlaceholderPolicy, error) {
	switch s {
	case "", "reject":
		return PlaceholderReject, nil
	case "create":
		return PlaceholderCreate, nil
	default:
		return 0, fmt.Errorf("invalid placeholder policy %q: must be 'reject' or 'create'", s)
	}
}

// String implements fmt.Stringer.
func (p PlaceholderPolicy) String() string {
	if p == PlaceholderCreate {
		return "create"
	}
	return "reject"
}

// Options controls graph construction.
type Options struct {
	Placeholders PlaceholderPolicy
	// Overrides replaces the payload of the named nodes with a literal after
	// the nodes are created. Operand edges of an overridden operator are
	// not added.
	Overrides map[string]node.Value
	// Width bounds override values the way the parser bounds declared
	// literals. Zero skips the check.
	Width node.Width
}
