package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/database/postgres"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Ledger      repository.Ledger
	Market      repository.Market
	Dungeon     repository.Dungeon
	Progression repository.Progression
}

// InitializeRepositories creates all repository implementations over one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Ledger:      postgres.NewLedgerRepository(dbPool),
		Market:      postgres.NewMarketRepository(dbPool),
		Dungeon:     postgres.NewDungeonRepository(dbPool),
		Progression: postgres.NewProgressionRepository(dbPool),
	}
}
