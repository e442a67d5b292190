package cooldown

import (
	"context"
	"time"
)

// Service manages per-account action cooldowns
type Service interface {
	// CheckCooldown returns how long until action is ready for userID under window.
	// Zero means ready.
	CheckCooldown(ctx context.Context, userID, action string, window time.Duration) (time.Duration, error)

	// UpdateCooldown stamps the action as used now.
	UpdateCooldown(ctx context.Context, userID, action string) error

	// EnforceCooldown atomically checks the configured window and executes fn if allowed.
	// Returns domain.CooldownError when the action is not ready.
	EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error

	// ResetCooldown clears the mark so the action is ready immediately
	ResetCooldown(ctx context.Context, userID, action string) error

	// Window returns the configured window for action
	Window(action string) time.Duration
}
