package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/api/shared"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/validation"
)

// callerID extracts the authenticated user's ID placed in the context by
// the authentication middleware.
func callerID(w http.ResponseWriter, r *http.Request, reporter *ErrorReporter) (uuid.UUID, bool) {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		reporter.Report(w, r, domain.ErrUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// pathID validates a path identifier on mutating routes. A missing or
// malformed value is a 400 validation failure.
func pathID(
	w http.ResponseWriter,
	r *http.Request,
	v *validation.Validator,
	reporter *ErrorReporter,
	param, label string,
) (uuid.UUID, bool) {
	id, err := v.ParseID(chi.URLParam(r, param), label)
	if err != nil {
		reporter.Report(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

// lookupID parses a path identifier on read routes. Identifiers are not
// validated there: a value that is not a UUID cannot match any row, so the
// caller answers with notFound.
func lookupID(
	w http.ResponseWriter,
	r *http.Request,
	reporter *ErrorReporter,
	param string,
	notFound error,
) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		reporter.Report(w, r, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the body into T, normalizes it and runs the request
// validation rules. It writes the error response itself and reports false
// when the request must not proceed.
func bindJSON[T any](
	w http.ResponseWriter,
	r *http.Request,
	v *validation.Validator,
	reporter *ErrorReporter,
) (T, bool) {
	var req T
	if err := shared.DecodeJSON(r, &req); err != nil {
		reporter.Report(w, r, fmt.Errorf("%w: %v", ErrInvalidRequestFormat, err))
		return req, false
	}

	result := validation.Check(v, req)
	if !result.OK() {
		reporter.Report(w, r, result.Err())
		return req, false
	}
	return result.Value(), true
}

// queryInt reads an integer query parameter. Missing or non-numeric values
// yield zero, which the services treat as "use the default".
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}
