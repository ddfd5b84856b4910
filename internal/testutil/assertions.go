package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertValue checks that the run succeeded and printed `id: value`.
func AssertValue(t *testing.T, result *HarnessResult, id string, value uint64) {
	t.Helper()

	require.NoError(t, result.Err)
	expected := fmt.Sprintf("%s: %d", id, value)
	require.True(t,
		strings.Contains(result.Output, expected+"\n"),
		"expected %q in output, got:\n%s", expected, result.Output,
	)
}
