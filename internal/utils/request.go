package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/restockhq/inventory-platform/internal/errors"
)

// ParseAndValidate decodes the JSON body into dest and runs struct-tag
// validation. Error responses are written here; callers just return on
// false.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(w, r, dest); err != nil {
		return false
	}

	return ValidateStruct(w, validate, dest)
}

// ParseID reads a positive int64 path value.
func ParseID(r *http.Request, key string) (int64, error) {
	raw := r.PathValue(key)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.BadRequestError(fmt.Sprintf("Invalid %s: %q", key, raw))
	}

	return id, nil
}
