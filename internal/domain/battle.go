package domain

import "time"

// BattleAction is a player command in a dungeon turn.
type BattleAction string

const (
	ActionAttack   BattleAction = "attack"
	ActionSkill    BattleAction = "skill"
	ActionPotion   BattleAction = "potion"
	ActionMPPotion BattleAction = "mp_potion"
	ActionBuff     BattleAction = "buff"
	ActionFlee     BattleAction = "flee"
)

// Valid reports whether a is a known action.
func (a BattleAction) Valid() bool {
	switch a {
	case ActionAttack, ActionSkill, ActionPotion, ActionMPPotion, ActionBuff, ActionFlee:
		return true
	}
	return false
}

// BattleState is the state of a battle after a turn.
type BattleState string

const (
	BattleActive BattleState = "active"
	BattleWon    BattleState = "won"
	BattleLost   BattleState = "lost"
	BattleFled   BattleState = "fled"
	// BattleRejected means the action could not be taken and nothing changed.
	BattleRejected BattleState = "rejected"
)

// Terminal reports whether the session ends in this state.
func (s BattleState) Terminal() bool {
	return s == BattleWon || s == BattleLost || s == BattleFled
}

// PlayerStats are the player's combat numbers inside one battle.
type PlayerStats struct {
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	MP    int `json:"mp"`
	MaxMP int `json:"max_mp"`
}

// MonsterStats are the monster's combat numbers inside one battle.
type MonsterStats struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Atk   int    `json:"atk"`
	Boss  bool   `json:"boss"`
}

// Consumables are the battle items carried into a session.
type Consumables struct {
	Potions   int `json:"potions"`
	MPPotions int `json:"mp_potions"`
	Buffs     int `json:"buffs"`
	Revives   int `json:"revives"`
}

// BattleSession is the full persisted snapshot of an in-flight battle.
type BattleSession struct {
	UserID         string       `json:"user_id"`
	RunID          string       `json:"run_id"`
	Stage          int          `json:"stage"`
	Player         PlayerStats  `json:"player"`
	Monster        MonsterStats `json:"monster"`
	Items          Consumables  `json:"items"`
	Special        bool         `json:"is_special"`
	UpdateProgress bool         `json:"update_progress"`
	Buffed         bool         `json:"buffed"`
	Turn           int          `json:"turn"`
	StartedAt      time.Time    `json:"started_at"`
}

// Clone returns a copy that shares no state with s.
func (s *BattleSession) Clone() *BattleSession {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// BattleOutcome is what a concluded battle paid out.
type BattleOutcome struct {
	Reward      int64    `json:"reward"`
	Drops       []string `json:"drops,omitempty"`
	NextStage   int      `json:"next_stage,omitempty"`
	StageOpened bool     `json:"stage_opened"`
}

// TurnResult is the result of applying one action.
type TurnResult struct {
	Session *BattleSession `json:"session"`
	Log     []string       `json:"log"`
	State   BattleState    `json:"state"`
	Outcome *BattleOutcome `json:"outcome,omitempty"`
	// Consumed lists inventory items spent by the turn.
	Consumed map[string]int `json:"consumed,omitempty"`
}

// Battle record results
const (
	RecordWin  = "win"
	RecordLoss = "loss"
)

// BattleRecord is an append-only entry for a concluded battle.
type BattleRecord struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	RunID     string    `json:"run_id"`
	Stage     int       `json:"stage"`
	Result    string    `json:"result"`
	Reward    int64     `json:"reward"`
	Drops     string    `json:"drops"`
	Special   bool      `json:"is_special"`
	Reason    string    `json:"reason"`
	Turns     int       `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
}

// Log modes for dungeon narration
const (
	LogModeSummary = "summary"
	LogModeDetail  = "detail"
)

// DungeonSettings are per-account dungeon preferences.
type DungeonSettings struct {
	AutoRetry bool   `json:"auto_retry"`
	LogMode   string `json:"log_mode"`
}

// DefaultDungeonSettings is used until an account saves its own.
func DefaultDungeonSettings() DungeonSettings {
	return DungeonSettings{AutoRetry: false, LogMode: LogModeSummary}
}

// DungeonFavorite is a saved stage shortcut.
type DungeonFavorite struct {
	Stage   int  `json:"stage"`
	Special bool `json:"is_special"`
}
