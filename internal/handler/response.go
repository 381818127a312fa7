package handler

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/bostel-e/christshop/internal/errors"
	"github.com/bostel-e/christshop/internal/httputil"
	"github.com/bostel-e/christshop/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

func writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, err)
}

// decodeAndValidate binds the JSON body into dst and runs its validate tags.
// Both failure modes come back as AppErrors ready for writeError.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.ValidationError(err.Error())
	}
	return nil
}
