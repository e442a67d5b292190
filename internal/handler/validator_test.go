package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	Action  string `validate:"battle_action"`
	Slot    string `validate:"omitempty,slot"`
	LogMode string `validate:"omitempty,log_mode"`
	Amount  int    `validate:"min=1,max=10000"`
}

func TestValidator_CustomTags(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		input   validatedRequest
		wantErr bool
	}{
		{"attack", validatedRequest{Action: "attack", Amount: 1}, false},
		{"mp potion with slot", validatedRequest{Action: "mp_potion", Slot: "head", Amount: 5}, false},
		{"detail mode", validatedRequest{Action: "flee", LogMode: "detail", Amount: 1}, false},
		{"unknown action", validatedRequest{Action: "dance", Amount: 1}, true},
		{"empty action", validatedRequest{Amount: 1}, true},
		{"unknown slot", validatedRequest{Action: "attack", Slot: "tail", Amount: 1}, true},
		{"unknown mode", validatedRequest{Action: "attack", LogMode: "verbose", Amount: 1}, true},
		{"amount zero", validatedRequest{Action: "attack", Amount: 0}, true},
		{"amount over max", validatedRequest{Action: "attack", Amount: 10001}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(validatedRequest{Action: "dance", Slot: "tail", Amount: 0})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Unknown dungeon action", fields["action"])
	assert.Equal(t, "Invalid equipment slot", fields["slot"])
	assert.Equal(t, "Must be at least 1", fields["amount"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	type body struct {
		ItemName string `json:"item_name" validate:"required"`
		Hidden   int    `json:"-" validate:"min=0"`
	}

	fields := FormatValidationError(GetValidator().ValidateStruct(body{}))
	assert.Equal(t, map[string]string{"item_name": "This field is required"}, fields)
}
