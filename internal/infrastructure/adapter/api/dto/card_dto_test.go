package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected Amount
		wantErr  bool
	}{
		{"String", `{"amount":"40.00"}`, "40.00", false},
		{"Number", `{"amount":40.5}`, "40.5", false},
		{"Integer", `{"amount":7}`, "7", false},
		{"Null", `{"amount":null}`, "", false},
		{"Bool", `{"amount":true}`, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req TransferRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, req.Amount)
		})
	}
}
