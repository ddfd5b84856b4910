package config

// Model is the unified representation of a settings file. Pointer fields are
// nil when the file does not set them, so callers can tell "unset" apart
// from a zero value.
type Model struct {
	Evaluation *Evaluation
	Export     *Export
	// Overrides maps identifiers to literal values that replace their
	// declared payload.
	Overrides map[string]uint64
}

// Evaluation is the format-agnostic representation of an `evaluation` block.
type Evaluation struct {
	Root         *string
	Strategy     *string
	Width        *int
	Placeholders *string
}

// Export is the format-agnostic representation of an `export` block.
type Export struct {
	// DotPath is where the DOT rendering is written. An empty string
	// disables the export.
	DotPath *string
}
