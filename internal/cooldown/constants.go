package cooldown

import "time"

// DefaultWindow applies to actions missing from Config.Windows.
const DefaultWindow = 5 * time.Minute

// Queries. The advisory lock key is derived in SQL from the (user, action)
// pair so that a lock exists even before the first mark row does.
const (
	sqlLockMark = `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`

	sqlSelectMark = `
		SELECT last_used_at
		FROM user_cooldowns
		WHERE user_id = $1 AND action_name = $2`

	sqlStampMark = `
		INSERT INTO user_cooldowns (user_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at`

	sqlDeleteMark = `DELETE FROM user_cooldowns WHERE user_id = $1 AND action_name = $2`
)

// Error wrapping prefixes
const (
	ErrMsgReadMarkFailed  = "read cooldown mark"
	ErrMsgStampMarkFailed = "stamp cooldown mark"
	ErrMsgClearMarkFailed = "clear cooldown mark"
	ErrMsgLockMarkFailed  = "lock cooldown mark"
)

// Log messages
const (
	LogMsgDevModeBypass    = "Cooldown bypassed in dev mode"
	LogMsgLostRace         = "Concurrent request already used the action"
	LogMsgCooldownEnforced = "Cooldown enforced"
)
