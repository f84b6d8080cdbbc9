package sixpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr bool
	}{
		{name: "lower case", give: "button-color"},
		{name: "upper case", give: "Button_Color"},
		{name: "digits", give: "2024-checkout"},
		{name: "spaces", give: "new checkout flow"},
		{name: "empty", give: "", wantErr: true},
		{name: "leading dash", give: "-red", wantErr: true},
		{name: "leading space", give: " red", wantErr: true},
		{name: "slash", give: "red/blue", wantErr: true},
		{name: "dot", give: "v1.2", wantErr: true},
		{name: "unicode", give: "rouge-é", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName("experiment", tt.give)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidName)
				assert.ErrorContains(t, err, "experiment")

				return
			}

			require.NoError(t, err)
		})
	}
}
