package utils

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/restockhq/inventory-platform/internal/utils/response"
)

// DecodeJSONBody reads and unmarshals the request body into dest,
// writing the error response itself on failure.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("Failed to read request body", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("could not read request body")))

		return err
	}

	if len(body) == 0 {
		err := errors.New("request body is empty")
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))

		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		slog.Error("Failed to decode request body", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid JSON in request body")))

		return err
	}

	return nil
}

// ValidateStruct runs struct-tag validation on req and writes the
// validation error response on failure. Returns true if valid.
func ValidateStruct(w http.ResponseWriter, v *validator.Validate, req any) bool {
	if err := v.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))

		return false
	}

	return true
}
