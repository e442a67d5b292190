package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes the JSON body into req and runs its
// validate tags. On error the 400 has already been written:
//
//	var req TransferRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Transfer"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		msg := ErrMsgInvalidRequest
		if errors.Is(err, io.EOF) {
			msg = ErrMsgEmptyBody
		}
		log.Warn(actionName+": "+LogMsgDecodeFailed, "error", err)
		respondError(w, http.StatusBadRequest, msg)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		fields := FormatValidationError(err)
		log.Debug(actionName+": "+LogMsgValidationFailed, "fields", fields)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: fields,
		})
		return err
	}

	return nil
}

// queryValue parses an optional query parameter with parse. Absent
// parameters give fallback. A malformed one writes a 400 and ok is false.
func queryValue[T any](r *http.Request, w http.ResponseWriter, name string, fallback T, parse func(string) (T, error), errFormat string) (T, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	v, err := parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(errFormat, name))
		var zero T
		return zero, false
	}
	return v, true
}

// GetIntQueryParam parses an optional integer query parameter.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	return queryValue(r, w, paramName, defaultValue, strconv.Atoi, ErrMsgInvalidIntParam)
}

// GetBoolQueryParam parses an optional boolean query parameter. Absent means false.
func GetBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (bool, bool) {
	return queryValue(r, w, paramName, false, strconv.ParseBool, ErrMsgInvalidBoolParam)
}

// accountID returns the account the route is scoped to. The account middleware
// has already rejected requests without one; the URL param covers handlers
// mounted without it.
func accountID(r *http.Request) string {
	if id := middleware.GetUserID(r.Context()); id != "" {
		return id
	}
	return chi.URLParam(r, middleware.URLParamUserID)
}
