package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgUserNotFound = "user not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgNoEffect     = "item has no usable effect"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgStockNotFound     = "stock not found"

	// Storage errors
	ErrMsgStorage = "storage failure"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Dungeon errors
	ErrMsgNoActiveSession = "no active dungeon session"
	ErrMsgSessionExists   = "a dungeon session is already saved"
	ErrMsgNoTicket        = "no dungeon ticket"
	ErrMsgInvalidStage    = "stage must be at least 1"

	// Progression errors
	ErrMsgMaxLevel       = "already at max level"
	ErrMsgUnknownTrack   = "unknown upgrade track"
	ErrMsgInvalidSlot    = "invalid equipment slot"
	ErrMsgNotEquippable  = "item cannot be equipped in that slot"
	ErrMsgNothingInSlot  = "nothing equipped in that slot"
	ErrMsgPetNotFound    = "pet not found"
	ErrMsgNotEnhanceable = "item cannot be enhanced"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrNoEffect     = errors.New(ErrMsgNoEffect)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrStockNotFound     = errors.New(ErrMsgStockNotFound)

	// ErrStorage marks a failure of the underlying store. Operations that return it
	// also return their documented safe default.
	ErrStorage = errors.New(ErrMsgStorage)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrNoActiveSession = errors.New(ErrMsgNoActiveSession)
	ErrSessionExists   = errors.New(ErrMsgSessionExists)
	ErrNoTicket        = errors.New(ErrMsgNoTicket)
	ErrInvalidStage    = errors.New(ErrMsgInvalidStage)

	ErrMaxLevel       = errors.New(ErrMsgMaxLevel)
	ErrUnknownTrack   = errors.New(ErrMsgUnknownTrack)
	ErrInvalidSlot    = errors.New(ErrMsgInvalidSlot)
	ErrNotEquippable  = errors.New(ErrMsgNotEquippable)
	ErrNothingInSlot  = errors.New(ErrMsgNothingInSlot)
	ErrPetNotFound    = errors.New(ErrMsgPetNotFound)
	ErrNotEnhanceable = errors.New(ErrMsgNotEnhanceable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// CooldownError is returned when an action is attempted before its window has passed.
type CooldownError struct {
	Action    string
	Remaining time.Duration
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("%s: %s (%s remaining)", ErrMsgOnCooldown, e.Action, e.Remaining.Round(time.Second))
}

// Is lets errors.Is(err, ErrOnCooldown) match any CooldownError.
func (e CooldownError) Is(target error) bool {
	return target == ErrOnCooldown
}

// StorageError wraps a store failure so that errors.Is(err, ErrStorage) holds
// while the original cause stays reachable.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// ruleErrors are the sentinels that describe a refused request rather than a failure.
var ruleErrors = []error{
	ErrUserNotFound, ErrItemNotFound, ErrNoEffect, ErrInsufficientQuantity,
	ErrInsufficientFunds, ErrStockNotFound, ErrOnCooldown, ErrNoActiveSession,
	ErrSessionExists, ErrNoTicket, ErrInvalidStage, ErrMaxLevel, ErrUnknownTrack,
	ErrInvalidSlot, ErrNotEquippable, ErrNothingInSlot, ErrPetNotFound,
	ErrNotEnhanceable, ErrInvalidInput,
}

// IsRuleError reports whether err wraps one of the domain's refusal sentinels.
func IsRuleError(err error) bool {
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
