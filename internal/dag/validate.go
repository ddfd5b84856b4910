package dag

import (
	"fmt"

	"github.com/specialistvlad/mathgrid/internal/graph"
)

// Validate checks that every operator node has exactly one operand in
// position 0 and one in position 1, and that the edges agree with the
// node's own operand order.
func Validate(g *graph.Graph) error {
	for _, n := range g.Nodes() {
		if !n.IsOperator() {
			continue
		}
		slots, err := g.OperandSlots(n.ID)
		if err != nil {
			return err
		}
		if len(slots) != 2 {
			return fmt.Errorf("%w %q: expected positions 0 and 1, got %d position(s)", ErrMalformedOperator, n.ID, len(slots))
		}
		for pos, want := range n.Operands {
			got := slots[pos]
			if len(got) != 1 || got[0] != want {
				return fmt.Errorf("%w %q: position %d holds %v, want %q", ErrMalformedOperator, n.ID, pos, got, want)
			}
		}
	}
	return nil
}
