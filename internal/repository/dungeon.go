package repository

import (
	"context"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// Dungeon defines persistence for battle sessions, records and dungeon preferences
type Dungeon interface {
	// GetSession returns nil when no session is saved.
	GetSession(ctx context.Context, userID string) (*domain.BattleSession, error)
	SaveSession(ctx context.Context, session domain.BattleSession) error
	DeleteSession(ctx context.Context, userID string) error

	// GetProgress returns 1 for users who never cleared a stage.
	GetProgress(ctx context.Context, userID string) (int, error)
	GetSettings(ctx context.Context, userID string) (domain.DungeonSettings, error)
	SaveSettings(ctx context.Context, userID string, settings domain.DungeonSettings) error
	ListFavorites(ctx context.Context, userID string) ([]domain.DungeonFavorite, error)
	AddFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) error
	RemoveFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (bool, error)
	// ListRecords returns the newest limit records first.
	ListRecords(ctx context.Context, userID string, limit int) ([]domain.BattleRecord, error)

	BeginTx(ctx context.Context) (DungeonTx, error)
}

// DungeonTx is a dungeon transaction used for item use mid-battle and for
// settling a finished battle.
type DungeonTx interface {
	Tx
	LedgerOps
	SaveSession(ctx context.Context, session domain.BattleSession) error
	DeleteSession(ctx context.Context, userID string) error
	// AdvanceProgress raises the stored stage to at least stage.
	AdvanceProgress(ctx context.Context, userID string, stage int) error
	InsertRecord(ctx context.Context, record domain.BattleRecord) error
}
