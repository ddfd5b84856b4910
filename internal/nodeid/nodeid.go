// internal/nodeid/nodeid.go
package nodeid

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidIdentifier is returned for identifiers that break the token rules.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// tokenRegex matches a run of non-whitespace characters. Whitespace also rules
// out the ": " separator.
var tokenRegex = regexp.MustCompile(`^\S+$`)

// Validate checks a raw identifier taken from an input line.
func Validate(rawID string) error {
	if rawID == "" {
		return fmt.Errorf("%w: identifier cannot be empty", ErrInvalidIdentifier)
	}
	if !tokenRegex.MatchString(rawID) {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidIdentifier, rawID)
	}
	return nil
}
