package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/testing/pgtest"
)

func TestProgressionRepository_Integration(t *testing.T) {
	pool := pgtest.Start(t)
	repo := NewProgressionRepository(pool)
	ctx := context.Background()

	t.Run("levels default to zero and commit together with costs", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		lv, err := tx.GetUpgradeLevelForUpdate(ctx, "smith", domain.TrackSword)
		require.NoError(t, err)
		assert.Zero(t, lv)

		_, err = tx.AddBalance(ctx, "smith", 5000)
		require.NoError(t, err)
		ok, err := tx.TryDebit(ctx, "smith", 3000)
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, tx.SetUpgradeLevel(ctx, "smith", domain.TrackSword, 1))
		require.NoError(t, tx.SetEnhancementLevel(ctx, "smith", "가죽 모자", 4))
		require.NoError(t, tx.Commit(ctx))

		levels, err := repo.GetUpgradeLevels(ctx, "smith")
		require.NoError(t, err)
		assert.Equal(t, map[string]int{domain.TrackSword: 1}, levels)

		enh, err := repo.GetEnhancementLevels(ctx, "smith")
		require.NoError(t, err)
		assert.Equal(t, 4, enh["가죽 모자"])
	})

	t.Run("equipment slots", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.SetEquipment(ctx, "knight", domain.SlotHead, "가죽 모자"))
		require.NoError(t, tx.SetEquipment(ctx, "knight", domain.SlotHead, "강철 투구"))
		require.NoError(t, tx.SetEquipment(ctx, "knight", domain.SlotBody, "가죽 갑옷"))
		require.NoError(t, tx.ClearEquipment(ctx, "knight", domain.SlotBody))
		eq, err := tx.GetEquipmentForUpdate(ctx, "knight")
		require.NoError(t, err)
		assert.Equal(t, domain.Equipment{domain.SlotHead: "강철 투구"}, eq)
		require.NoError(t, tx.Commit(ctx))

		eq, err = repo.GetEquipment(ctx, "knight")
		require.NoError(t, err)
		assert.Equal(t, domain.Equipment{domain.SlotHead: "강철 투구"}, eq)
	})

	t.Run("pets belong to their owner", func(t *testing.T) {
		pet, err := repo.CreatePet(ctx, "owner", "cat", "나비")
		require.NoError(t, err)
		assert.Equal(t, 1, pet.Level)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		other, err := tx.GetPetForUpdate(ctx, "stranger", pet.ID)
		require.NoError(t, err)
		assert.Nil(t, other)

		mine, err := tx.GetPetForUpdate(ctx, "owner", pet.ID)
		require.NoError(t, err)
		require.NotNil(t, mine)
		mine.Level, mine.XP = 3, 42
		require.NoError(t, tx.SavePet(ctx, *mine))
		require.NoError(t, tx.Commit(ctx))

		pets, err := repo.ListPets(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, pets, 1)
		assert.Equal(t, 3, pets[0].Level)
		assert.Equal(t, int64(42), pets[0].XP)
	})

	t.Run("jobs start at level one", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		job, err := tx.GetJobForUpdate(ctx, "worker", "miner")
		require.NoError(t, err)
		assert.Equal(t, 1, job.Level)
		job.Level, job.XP = 2, 10
		require.NoError(t, tx.SaveJob(ctx, *job))
		require.NoError(t, tx.Commit(ctx))

		jobs, err := repo.ListJobs(ctx, "worker")
		require.NoError(t, err)
		assert.Equal(t, []domain.JobProgress{{UserID: "worker", Job: "miner", Level: 2, XP: 10}}, jobs)
	})
}
