package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/testing/pgtest"
)

func TestDungeonRepository_Integration(t *testing.T) {
	pool := pgtest.Start(t)
	repo := NewDungeonRepository(pool)
	ctx := context.Background()

	session := domain.BattleSession{
		UserID:         "hero",
		RunID:          uuid.NewString(),
		Stage:          7,
		Player:         domain.PlayerStats{Atk: 30, HP: 80, MaxHP: 140, MP: 60, MaxMP: 100},
		Monster:        domain.MonsterStats{Name: "와이번", Emoji: "🐲", HP: 1200, MaxHP: 1680, Atk: 52},
		Items:          domain.Consumables{Potions: 2, Revives: 1},
		UpdateProgress: true,
		Turn:           4,
		StartedAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("session round trip", func(t *testing.T) {
		got, err := repo.GetSession(ctx, "hero")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, repo.SaveSession(ctx, session))
		got, err = repo.GetSession(ctx, "hero")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session, *got)

		updated := session
		updated.Turn = 5
		updated.Monster.HP = 1100
		require.NoError(t, repo.SaveSession(ctx, updated))
		got, err = repo.GetSession(ctx, "hero")
		require.NoError(t, err)
		assert.Equal(t, 5, got.Turn)
		assert.Equal(t, 1100, got.Monster.HP)

		require.NoError(t, repo.DeleteSession(ctx, "hero"))
		got, err = repo.GetSession(ctx, "hero")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("progress is monotonic", func(t *testing.T) {
		stage, err := repo.GetProgress(ctx, "climber")
		require.NoError(t, err)
		assert.Equal(t, 1, stage)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.AdvanceProgress(ctx, "climber", 5))
		require.NoError(t, tx.AdvanceProgress(ctx, "climber", 3))
		require.NoError(t, tx.Commit(ctx))

		stage, err = repo.GetProgress(ctx, "climber")
		require.NoError(t, err)
		assert.Equal(t, 5, stage)
	})

	t.Run("settlement commits atomically", func(t *testing.T) {
		require.NoError(t, repo.SaveSession(ctx, session))

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.DeleteSession(ctx, "hero"))
		_, err = tx.AddBalance(ctx, "hero", 7000)
		require.NoError(t, err)
		require.NoError(t, tx.AddItem(ctx, "hero", domain.ItemIronOre, 1))
		require.NoError(t, tx.InsertRecord(ctx, domain.BattleRecord{
			UserID: "hero", RunID: session.RunID, Stage: 7, Result: domain.RecordWin,
			Reward: 7000, Drops: domain.ItemIronOre, Reason: "Clear", Turns: 5,
		}))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetSession(ctx, "hero")
		require.NoError(t, err)
		assert.NotNil(t, got, "rolled back settlement must keep the session")

		records, err := repo.ListRecords(ctx, "hero", 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("records newest first", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		for stage := 1; stage <= 3; stage++ {
			require.NoError(t, tx.InsertRecord(ctx, domain.BattleRecord{
				UserID: "logger", RunID: uuid.NewString(), Stage: stage, Result: domain.RecordLoss, Reason: "Dead",
			}))
		}
		require.NoError(t, tx.Commit(ctx))

		records, err := repo.ListRecords(ctx, "logger", 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 3, records[0].Stage)
		assert.Equal(t, 2, records[1].Stage)
	})

	t.Run("settings and favorites", func(t *testing.T) {
		s, err := repo.GetSettings(ctx, "prefs")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultDungeonSettings(), s)

		want := domain.DungeonSettings{AutoRetry: true, LogMode: domain.LogModeDetail}
		require.NoError(t, repo.SaveSettings(ctx, "prefs", want))
		s, err = repo.GetSettings(ctx, "prefs")
		require.NoError(t, err)
		assert.Equal(t, want, s)

		fav := domain.DungeonFavorite{Stage: 12, Special: true}
		require.NoError(t, repo.AddFavorite(ctx, "prefs", fav))
		require.NoError(t, repo.AddFavorite(ctx, "prefs", fav))
		favs, err := repo.ListFavorites(ctx, "prefs")
		require.NoError(t, err)
		assert.Equal(t, []domain.DungeonFavorite{fav}, favs)

		removed, err := repo.RemoveFavorite(ctx, "prefs", fav)
		require.NoError(t, err)
		assert.True(t, removed)
		removed, err = repo.RemoveFavorite(ctx, "prefs", fav)
		require.NoError(t, err)
		assert.False(t, removed)
	})
}
