package handlers

import (
	"errors"
	"net/http"

	"github.com/artem13815/askexpert/pkg/consult"
)

// classify maps requester errors onto an HTTP status and a user-facing message.
func classify(err error) (int, string) {
	var perr *consult.ProviderError
	switch {
	case errors.Is(err, consult.ErrEmptyInput):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, consult.ErrMissingCredential):
		return http.StatusServiceUnavailable, err.Error()
	case errors.As(err, &perr):
		return http.StatusBadGateway, "An error occurred: " + perr.Error()
	default:
		return http.StatusInternalServerError, "An error occurred: " + err.Error()
	}
}
