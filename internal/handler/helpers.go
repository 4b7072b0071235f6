package handler

import (
	"errors"
	"net/http"

	"atelier/internal/domain"
	"atelier/internal/httputil"
)

// handleError converts domain errors to failure envelopes. Nothing
// propagates past the handler boundary as an unhandled fault.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrStorage):
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} path value, writing a 400 envelope itself when
// the id is malformed. The bool reports whether the caller may proceed;
// no store access happens on bad input.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := httputil.PathID(r)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}
