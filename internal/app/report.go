package app

import (
	"fmt"
	"io"

	"github.com/specialistvlad/mathgrid/internal/scheduler"
)

// Report is the result surface of a run.
type Report struct {
	Strategy  string
	Root      string
	RootValue uint64
	// Frontier is set for the frontier and both strategies.
	Frontier *scheduler.Result
}

// Write prints the report using the input's own `id: value` line format.
// The rooted strategy prints the root alone; the others print every resolved
// node in resolution order, followed by unresolved identifiers.
func (r *Report) Write(w io.Writer) error {
	if r.Frontier == nil {
		_, err := fmt.Fprintf(w, "%s: %d\n", r.Root, r.RootValue)
		return err
	}
	for pair := r.Frontier.Values.Oldest(); pair != nil; pair = pair.Next() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", pair.Key, pair.Value); err != nil {
			return err
		}
	}
	for _, id := range r.Frontier.Unresolved {
		if _, err := fmt.Fprintf(w, "%s: ?\n", id); err != nil {
			return err
		}
	}
	return nil
}
