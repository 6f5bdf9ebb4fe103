// Package response writes the JSON envelopes shared by every handler:
// {"success": true, ...} on success and {"success": false, "error": "..."}
// on failure.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/pkg/logger/types"
)

// LoginURL is returned with every 401 so the client can redirect.
const LoginURL = "/auth/login"

const maxBodyBytes = 1 << 20

func Success(w http.ResponseWriter, status int, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["success"] = true
	write(w, status, data)
}

func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func Unauthorized(w http.ResponseWriter) {
	write(w, http.StatusUnauthorized, map[string]any{
		"success":   false,
		"error":     errorz.ErrUnauthorized.Error(),
		"login_url": LoginURL,
	})
}

// FromError maps domain errors to status codes. Anything unknown is logged
// and reported as a 500 without details.
func FromError(w http.ResponseWriter, r *http.Request, logger *types.Logger, err error) {
	switch {
	case errors.Is(err, errorz.ErrUnauthorized):
		Unauthorized(w)
	case errors.Is(err, errorz.ErrForbidden):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errorz.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errorz.ErrClubAlreadyExists), errors.Is(err, errorz.ErrNotApplicable):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, errorz.ErrInvalidForm),
		errors.Is(err, errorz.ErrInvalidEmail),
		errors.Is(err, errorz.ErrInvalidCode),
		errors.Is(err, errorz.ErrInvalidSortKey):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// Decode reads a JSON body into dst. Unknown fields are rejected.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errorz.ErrInvalidForm, err)
	}
	return nil
}

func PNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(data)
}

func write(w http.ResponseWriter, status int, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
