package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeAndValidate reads a JSON body into dst and checks its validate tags.
// On failure it writes a 400 response and returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		resp := Response{Message: "validation failed"}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			resp.Details = make(map[string]string, len(validationErrs))
			for _, fe := range validationErrs {
				resp.Details[fe.Field()] = fmt.Sprintf("failed on '%s' tag", fe.Tag())
			}
		}
		RespondWithJSON(w, http.StatusBadRequest, resp)
		return false
	}
	return true
}
