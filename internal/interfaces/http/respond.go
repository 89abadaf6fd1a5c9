package http

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"jyotish-backend/pkg/api"
	"jyotish-backend/pkg/errors"
)

// respondError maps the error taxonomy to HTTP statuses: validation → 400
// with the offending field, not-found → 404, unavailable → 503, anything
// else → 500 with no internals leaked.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsValidation(err):
		api.FieldError(w, http.StatusBadRequest, err.Error(), errors.FieldOf(err))
	case errors.IsNotFound(err):
		api.Error(w, http.StatusNotFound, err.Error())
	case errors.IsUnavailable(err):
		api.Error(w, http.StatusServiceUnavailable, err.Error())
	default:
		api.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// respondInvalidBody reports a failed DTO validation, naming the first
// offending field in lower camel case to match the JSON body.
func respondInvalidBody(w http.ResponseWriter, err error) {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		field := verrs[0].Field()
		field = strings.ToLower(field[:1]) + field[1:]
		api.FieldError(w, http.StatusBadRequest, "invalid value for "+field, field)
		return
	}
	api.Error(w, http.StatusBadRequest, "invalid request body")
}
