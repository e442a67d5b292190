package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// Validator checks request structs against their validate tags.
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	shared        *Validator
)

// customRules are the domain tags usable in request structs.
var customRules = map[string]validator.Func{
	"battle_action": func(fl validator.FieldLevel) bool {
		return domain.BattleAction(fl.Field().String()).Valid()
	},
	"slot": func(fl validator.FieldLevel) bool {
		return domain.ValidSlot(fl.Field().String())
	},
	"log_mode": func(fl validator.FieldLevel) bool {
		mode := fl.Field().String()
		return mode == domain.LogModeSummary || mode == domain.LogModeDetail
	},
}

// fixedMessages maps tags to their client-facing text. Tags with a parameter
// are formatted in FormatValidationError.
var fixedMessages = map[string]string{
	"required":      "This field is required",
	"battle_action": "Unknown dungeon action",
	"slot":          "Invalid equipment slot",
	"log_mode":      "Log mode must be summary or detail",
	"excludesall":   "Contains invalid characters",
}

// GetValidator returns the shared validator, building it on first use.
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		for tag, fn := range customRules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("register %s validation: %v", tag, err))
			}
		}
		shared = &Validator{validate: v}
	})
	return shared
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// jsonFieldName reports fields by their JSON name so error keys match the
// request body. Untagged fields fall back to the lower-cased Go name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// FormatValidationError turns validator output into a field -> message map.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		out[e.Field()] = messageFor(e)
	}
	return out
}

func messageFor(e validator.FieldError) string {
	if msg, ok := fixedMessages[e.Tag()]; ok {
		return msg
	}
	switch e.Tag() {
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param())
	}
	return "Invalid value"
}
