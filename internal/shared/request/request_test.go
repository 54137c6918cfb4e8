package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starwars-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/planets/x", nil)
			req.SetPathValue("id", tt.value)

			id, err := PathID(req, "id")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(`{"name":"Naboo"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &body))
	assert.Equal(t, "Naboo", body.Name)

	req = httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(`{"name":`))
	err := DecodeJSON(httptest.NewRecorder(), req, &body)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
}

func TestDecodeJSONRejectsOversizedBody(t *testing.T) {
	var body struct {
		Name string `json:"name"`
	}

	payload := `{"name":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/planets", strings.NewReader(payload))

	err := DecodeJSON(httptest.NewRecorder(), req, &body)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypePayloadTooLarge, errors.GetType(err))
	assert.Equal(t, "request body exceeds 1048576 bytes", errors.ClientMessage(err))
}
