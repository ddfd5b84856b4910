package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/mathgrid/internal/ctxlog"
	"github.com/specialistvlad/mathgrid/internal/node"
)

// ErrDivisionByZero is returned when a division's right operand is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ApplyFunc computes the raw result of an operation. Results are wrapped to
// the configured width by the registry, not by the function itself.
type ApplyFunc func(left, right node.Value) (node.Value, error)

// Operator is a registered binary operation.
type Operator struct {
	Op     node.Op
	Symbol string
	Fn     ApplyFunc
}

// Module is the interface that groups of operators implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the operators available to a single application instance.
type Registry struct {
	bySymbol map[string]*Operator
	byOp     map[node.Op]*Operator
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		bySymbol: make(map[string]*Operator),
		byOp:     make(map[node.Op]*Operator),
	}
}

// Default returns a registry with the four arithmetic operators registered.
func Default() *Registry {
	r := New()
	Arithmetic{}.Register(r)
	return r
}

// Register adds an operator. Registering the same symbol or op twice is a
// programmer error and panics.
func (r *Registry) Register(o *Operator) {
	if _, exists := r.bySymbol[o.Symbol]; exists {
		panic(fmt.Sprintf("operator with symbol '%s' already registered", o.Symbol))
	}
	if _, exists := r.byOp[o.Op]; exists {
		panic(fmt.Sprintf("operator '%s' already registered", o.Op))
	}
	r.bySymbol[o.Symbol] = o
	r.byOp[o.Op] = o
}

// Lookup returns the operator registered for a symbol.
func (r *Registry) Lookup(symbol string) (*Operator, bool) {
	o, ok := r.bySymbol[symbol]
	return o, ok
}

// Symbols returns the registered symbols in sorted order.
func (r *Registry) Symbols() []string {
	symbols := make([]string, 0, len(r.bySymbol))
	for s := range r.bySymbol {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}

// Apply evaluates op on the two operands and wraps the result to width.
func (r *Registry) Apply(op node.Op, left, right node.Value, width node.Width) (node.Value, error) {
	o, ok := r.byOp[op]
	if !ok {
		return 0, fmt.Errorf("no implementation registered for operator %s", op)
	}
	v, err := o.Fn(left, right)
	if err != nil {
		return 0, err
	}
	return width.Wrap(v), nil
}

// ValidateRegistry checks that every operator the parser can produce has an
// implementation.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var missing []string
	for _, op := range []node.Op{node.OpAdd, node.OpSub, node.OpMul, node.OpDiv} {
		o, ok := r.byOp[op]
		if !ok || o.Fn == nil {
			missing = append(missing, op.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("registry validation failed: no implementation for %s", strings.Join(missing, ", "))
	}

	logger.Debug("Operator registry validated.", "symbols", r.Symbols())
	return nil
}
