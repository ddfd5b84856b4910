package node

import "fmt"

// Value is the numeric payload of a resolved node. Arithmetic is carried out
// on uint64 and wrapped to the configured Width.
type Value = uint64

// Kind represents the resolution state of a node.
type Kind int

const (
	// KindUnresolved marks a placeholder created for an undeclared identifier.
	KindUnresolved Kind = iota
	// KindLiteral marks a node holding a final value.
	KindLiteral
	// KindOperator marks a node waiting for its two operands.
	KindOperator
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUnresolved:
		return "unresolved"
	case KindLiteral:
		return "literal"
	case KindOperator:
		return "operator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Op distinguishes the four supported binary operations.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the operator as it appears in the input.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Width is the number of bits literals and results are bounded to.
type Width uint8

// Supported widths.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// ParseWidth validates a bit count.
func ParseWidth(bits int) (Width, error) {
	switch w := Width(bits); w {
	case Width8, Width16, Width32, Width64:
		return w, nil
	default:
		return 0, fmt.Errorf("unsupported width %d: must be 8, 16, 32 or 64", bits)
	}
}

// Bits returns the width as an int, suitable for strconv.
func (w Width) Bits() int {
	return int(w)
}

// Max returns the largest value representable in w bits.
func (w Width) Max() Value {
	if w >= Width64 {
		return ^Value(0)
	}
	return Value(1)<<w - 1
}

// Wrap reduces v modulo 2^w.
func (w Width) Wrap(v Value) Value {
	return v & w.Max()
}
