package integration_tests

import (
	"os"
	"testing"

	"github.com/specialistvlad/mathgrid/internal/dag"
	"github.com/specialistvlad/mathgrid/internal/engine"
	"github.com/specialistvlad/mathgrid/internal/parser"
	"github.com/specialistvlad/mathgrid/internal/registry"
	"github.com/specialistvlad/mathgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_FatalErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		input        string
		placeholders string
		err          error
		message      string
	}{
		{name: "missing operand", input: "root: a + b\na: 1\nb: 2\nx: 1 + \n", err: parser.ErrOperandCount, message: "line 4"},
		{name: "missing separator", input: "root 5\n", err: parser.ErrMissingSeparator},
		{name: "unknown operator", input: "root: a % b\na: 1\nb: 2\n", err: parser.ErrUnknownOperator},
		{name: "literal overflow", input: "root: 18446744073709551616\n", err: parser.ErrLiteralOverflow},
		{name: "duplicate identifier", input: "root: 1\nroot: 2\n", err: dag.ErrDuplicateIdentifier},
		{name: "undeclared operand", input: "root: a + ghost\na: 1\n", err: dag.ErrUnknownIdentifier},
		{name: "cycle", input: "root: a + b\na: root - b\nb: 1\n", err: dag.ErrCycle},
		{name: "division by zero", input: "root: a / z\na: 8\nz: 0\n", err: registry.ErrDivisionByZero, message: "`root`"},
		{
			name:         "placeholder never resolves",
			input:        "root: a + ghost\na: 1\n",
			placeholders: "create",
			err:          engine.ErrUnresolved,
			message:      "could not resolve `root`",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			cfg := testutil.DefaultConfig()
			if tc.placeholders != "" {
				cfg.Placeholders = tc.placeholders
			}

			// --- Act ---
			result := testutil.RunIntegrationTest(t, map[string]string{testutil.InputFile: tc.input}, cfg)

			// --- Assert ---
			require.Error(t, result.Err)
			assert.ErrorIs(t, result.Err, tc.err)
			if tc.message != "" {
				assert.Contains(t, result.Err.Error(), tc.message)
			}
			assert.Empty(t, result.Output, "no partial result may be printed")
		})
	}
}

func TestRun_MissingInputAbortsBeforeParsing(t *testing.T) {
	t.Parallel()

	result := testutil.RunIntegrationTest(t, map[string]string{}, nil)

	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, os.ErrNotExist)
	assert.NotContains(t, result.LogOutput, "Input parsed.")
}
