package registry

import "github.com/specialistvlad/mathgrid/internal/node"

// Arithmetic registers +, -, * and /. All four use unsigned modular
// arithmetic; Div truncates.
type Arithmetic struct{}

// Register implements Module.
func (Arithmetic) Register(r *Registry) {
	r.Register(&Operator{Op: node.OpAdd, Symbol: "+", Fn: add})
	r.Register(&Operator{Op: node.OpSub, Symbol: "-", Fn: sub})
	r.Register(&Operator{Op: node.OpMul, Symbol: "*", Fn: mul})
	r.Register(&Operator{Op: node.OpDiv, Symbol: "/", Fn: div})
}

func add(l, r node.Value) (node.Value, error) { return l + r, nil }
func sub(l, r node.Value) (node.Value, error) { return l - r, nil }
func mul(l, r node.Value) (node.Value, error) { return l * r, nil }

func div(l, r node.Value) (node.Value, error) {
	if r == 0 {
		return 0, ErrDivisionByZero
	}
	return l / r, nil
}
