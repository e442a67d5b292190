package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON encodes payload before touching the response, so an encoding
// failure still yields a clean 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		buf.Reset()
		buf.WriteString(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response.
// Refusals are logged at warn, storage failures at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(op+LogMsgServiceFailedSuffix, "error", err)
	} else {
		log.Warn(op+LogMsgServiceRefusedSuffix, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgNoEffectError        = "That item can't be used"
	ErrMsgInsufficientItemsErr = "Not enough items"
	ErrMsgNotEnoughJellyError  = "Not enough jelly"
	ErrMsgStockNotFoundError   = "Stock not found"
	ErrMsgOnCooldownError      = "Action is on cooldown. Try again later"

	ErrMsgNoActiveSessionError = "No dungeon in progress"
	ErrMsgSessionExistsError   = "A dungeon run is already saved. Resume or discard it first"
	ErrMsgNoTicketError        = "A dungeon ticket is required for special stages"
	ErrMsgInvalidStageError    = "Stage must be at least 1"

	ErrMsgMaxLevelError       = "Already at max level"
	ErrMsgUnknownTrackError   = "Unknown upgrade track"
	ErrMsgInvalidSlotError    = "Invalid equipment slot"
	ErrMsgNotEquippableError  = "That item can't be equipped there"
	ErrMsgNothingInSlotError  = "Nothing is equipped in that slot"
	ErrMsgPetNotFoundError    = "Pet not found"
	ErrMsgNotEnhanceableError = "That item can't be enhanced"
)

var serviceErrorTable = []struct {
	target error
	status int
	msg    string
}{
	{domain.ErrStorage, http.StatusInternalServerError, ErrMsgGenericServerError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFoundError},
	{domain.ErrItemNotFound, http.StatusBadRequest, ErrMsgItemNotFoundError},
	{domain.ErrNoEffect, http.StatusBadRequest, ErrMsgNoEffectError},
	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughJellyError},
	{domain.ErrInsufficientQuantity, http.StatusBadRequest, ErrMsgInsufficientItemsErr},
	{domain.ErrStockNotFound, http.StatusNotFound, ErrMsgStockNotFoundError},
	{domain.ErrOnCooldown, http.StatusTooManyRequests, ErrMsgOnCooldownError},
	{domain.ErrNoActiveSession, http.StatusNotFound, ErrMsgNoActiveSessionError},
	{domain.ErrSessionExists, http.StatusConflict, ErrMsgSessionExistsError},
	{domain.ErrNoTicket, http.StatusBadRequest, ErrMsgNoTicketError},
	{domain.ErrInvalidStage, http.StatusBadRequest, ErrMsgInvalidStageError},
	{domain.ErrMaxLevel, http.StatusBadRequest, ErrMsgMaxLevelError},
	{domain.ErrUnknownTrack, http.StatusBadRequest, ErrMsgUnknownTrackError},
	{domain.ErrInvalidSlot, http.StatusBadRequest, ErrMsgInvalidSlotError},
	{domain.ErrNotEquippable, http.StatusBadRequest, ErrMsgNotEquippableError},
	{domain.ErrNothingInSlot, http.StatusBadRequest, ErrMsgNothingInSlotError},
	{domain.ErrPetNotFound, http.StatusNotFound, ErrMsgPetNotFoundError},
	{domain.ErrNotEnhanceable, http.StatusBadRequest, ErrMsgNotEnhanceableError},
}

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a message
// users can act on. Unknown errors become a generic 500 so internals never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cd domain.CooldownError
	if errors.As(err, &cd) {
		return http.StatusTooManyRequests, cd.Error()
	}

	for _, e := range serviceErrorTable {
		if errors.Is(err, e.target) {
			return e.status, e.msg
		}
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
