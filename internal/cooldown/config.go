package cooldown

import "time"

// Config holds cooldown service configuration
type Config struct {
	// DevMode skips the readiness check. Marks are still written.
	DevMode bool

	// Windows maps action names to their cooldown.
	Windows map[string]time.Duration

	// Default is used for unlisted actions. Zero means DefaultWindow.
	Default time.Duration
}

// Window returns the cooldown configured for action.
func (c Config) Window(action string) time.Duration {
	if w, ok := c.Windows[action]; ok {
		return w
	}
	if c.Default > 0 {
		return c.Default
	}
	return DefaultWindow
}

// remaining is max(0, window - (now - last)). A nil mark is ready.
func remaining(now time.Time, last *time.Time, window time.Duration) time.Duration {
	if last == nil {
		return 0
	}
	return max(0, window-now.Sub(*last))
}
