package request

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"starwars-server/internal/shared/errors"
)

const maxBodyBytes = 1 << 20 // 1 MB

// PathID parses the named path wildcard as a positive integer id.
func PathID(r *http.Request, name string) (int, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.Validationf("%s is required", name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.Validationf("invalid %s format", name)
	}
	return id, nil
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.WrapPayloadTooLarge(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), err)
		}
		return errors.WrapValidation("invalid JSON in request body", err)
	}
	return nil
}
