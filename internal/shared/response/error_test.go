package response

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"starwars-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestErrorStatusCodes(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		kind    string
		message string
	}{
		{errors.NotFound("Planet not found"), http.StatusNotFound, "not_found", "Planet not found"},
		{errors.Validation("name is required"), http.StatusBadRequest, "validation", "name is required"},
		{errors.Conflict("Email already in use"), http.StatusConflict, "conflict", "Email already in use"},
		{errors.Unauthorized("authentication required"), http.StatusUnauthorized, "unauthorized", "authentication required"},
		{errors.RateLimited("rate limit exceeded"), http.StatusTooManyRequests, "rate_limited", "rate limit exceeded"},
		{errors.WrapPayloadTooLarge("request body exceeds 1048576 bytes", nil), http.StatusRequestEntityTooLarge, "payload_too_large", "request body exceeds 1048576 bytes"},
		{stderrors.New("connection reset"), http.StatusInternalServerError, "internal", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/planets/1", nil)

			Error(rec, req, discardLogger(), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.kind, body.Error)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.status, body.Code)
		})
	}
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, http.StatusCreated, "Planet created")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Planet created"}`, rec.Body.String())
}
