// Package dag builds the expression graph from parsed declarations.
//
// Construction is two-pass because an operand may be declared after the line
// that references it:
//
//  1. createNodes adds one node per declaration and rejects duplicates.
//  2. linkNodes resolves each operator's two operand identifiers and adds the
//     position 0 and position 1 edges.
//
// What happens to an operand identifier that was never declared is an
// explicit choice, see PlaceholderPolicy.
package dag
