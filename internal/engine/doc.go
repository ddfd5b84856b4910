// Package engine evaluates the expression graph from a single root.
//
// Evaluation is an iterative post-order walk along operator -> operand edges.
// The walk keeps two explicit stacks: a frame stack of nodes still to visit
// and a value stack of operand values. A literal pushes its value. An
// operator, visited again after both operands, pops the right then the left
// value, applies itself, is folded into a literal in place, and pushes its
// result for its own parent. When the walk ends the value stack holds exactly
// the root's value.
//
// Because every frame carries its own operands on the shared value stack, the
// walk does not rely on subtrees being evaluated one at a time.
package engine
