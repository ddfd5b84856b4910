// internal/nodeid/doc.go

/*
Package nodeid centralizes the rules for node identifiers.

Identifiers are opaque tokens. The only reserved characters are whitespace,
which separates operands on an operator line, and the ": " sequence, which
separates an identifier from its payload.
*/
package nodeid
