// Package parser turns declaration lines into Declarations.
//
// Two line shapes are accepted:
//
//	<identifier>: <unsigned integer>
//	<identifier>: <identifier> <op> <identifier>
//
// The parser does not resolve operand identifiers. It returns them as raw
// strings for the graph builder, which is what allows operands to be declared
// after the lines that reference them.
package parser
