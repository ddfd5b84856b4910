// Package registry maps the operator symbols used in declarations (e.g. "+")
// to the Go functions that implement them.
//
// The parser resolves symbols through the registry and both evaluators apply
// operators through it, so every arithmetic rule, including wrapping to the
// configured width and the division-by-zero check, lives in one place.
// During startup the registry is validated to make sure every node.Op has a
// registered implementation.
package registry
