package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/dnstock/realty-backend/middleware"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

var validate = validator.New()

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// decodeAndValidate unmarshals the body into req and runs struct validation.
// On failure it writes the error response and reports false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid payload", nil, err,
		)
		return false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", err.Error(),
		)
		return false
	}
	return true
}

// requireUser pulls the authenticated user attached by the auth middleware.
func requireUser(w http.ResponseWriter, r *http.Request) *models.User {
	user := middleware.UserFromRequest(r)
	if user == nil {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing user in context", nil,
		)
	}
	return user
}

func pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, errors.New("missing path parameter: " + name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid path parameter: " + name)
	}
	return id, nil
}

// pageParams reads skip/limit query params with sane defaults and caps.
func pageParams(r *http.Request) (skip, limit int) {
	skip, limit = 0, defaultPageLimit
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}

// respondStoreError maps engine errors onto the HTTP envelope. Unauthorized
// access collapses into 404 so clients cannot probe which ids exist.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound), errors.Is(err, utils.ErrUnauthorized):
		utils.RespondErrorWithCode(
			w, http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found", nil,
		)
	case errors.Is(err, utils.ErrConflict):
		utils.RespondErrorWithCode(
			w, http.StatusConflict, utils.ErrCodeConflict, "Resource conflicts with existing data", nil,
		)
	default:
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", nil, err,
		)
	}
}

// runAndRespond executes fn inside a request context and writes the result
// as JSON with the given status.
func runAndRespond[T any](
	w http.ResponseWriter,
	r *http.Request,
	runner repositories.ContextRunner,
	user *models.User,
	status int,
	fn func(rc *repositories.RequestContext) (T, error),
) {
	var out T
	err := runner(r.Context(), user, func(rc *repositories.RequestContext) error {
		var err error
		out, err = fn(rc)
		return err
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, status, out)
}
