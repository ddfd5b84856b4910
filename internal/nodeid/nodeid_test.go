// internal/nodeid/nodeid_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		rawID     string
		expectErr bool
	}{
		{name: "simple name", rawID: "root"},
		{name: "digits and punctuation", rawID: "node_1.b-2"},
		{name: "unicode", rawID: "wurzel🌳"},
		{name: "colon inside", rawID: "a:b"},
		{name: "error - empty string", rawID: "", expectErr: true},
		{name: "error - inner space", rawID: "a b", expectErr: true},
		{name: "error - tab", rawID: "a\tb", expectErr: true},
		{name: "trailing colon", rawID: "a:"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.rawID)
			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
		})
	}
}
