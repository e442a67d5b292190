package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

const (
	sqlSelectUpgradeLevels = `SELECT upgrade_type, level FROM user_upgrades WHERE user_id = $1`

	sqlSelectUpgradeLevelForUpdate = `
		SELECT level FROM user_upgrades WHERE user_id = $1 AND upgrade_type = $2 FOR UPDATE`

	sqlUpsertUpgradeLevel = `
		INSERT INTO user_upgrades (user_id, upgrade_type, level) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, upgrade_type) DO UPDATE SET level = EXCLUDED.level`

	sqlSelectEnhancementLevels = `SELECT item_name, level FROM user_armor_enhancements WHERE user_id = $1`

	sqlSelectEnhancementForUpdate = `
		SELECT level FROM user_armor_enhancements WHERE user_id = $1 AND item_name = $2 FOR UPDATE`

	sqlUpsertEnhancement = `
		INSERT INTO user_armor_enhancements (user_id, item_name, level) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_name) DO UPDATE SET level = EXCLUDED.level`

	sqlSelectEquipment = `SELECT slot, item_name FROM user_equipment WHERE user_id = $1`

	sqlUpsertEquipment = `
		INSERT INTO user_equipment (user_id, slot, item_name) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, slot) DO UPDATE SET item_name = EXCLUDED.item_name`

	sqlDeleteEquipment = `DELETE FROM user_equipment WHERE user_id = $1 AND slot = $2`

	sqlSelectPets = `
		SELECT id, user_id, pet_type, pet_name, level, xp, created_at
		FROM user_pets WHERE user_id = $1 ORDER BY id`

	sqlInsertPet = `
		INSERT INTO user_pets (user_id, pet_type, pet_name) VALUES ($1, $2, $3)
		RETURNING id, user_id, pet_type, pet_name, level, xp, created_at`

	sqlSelectPetForUpdate = `
		SELECT id, user_id, pet_type, pet_name, level, xp, created_at
		FROM user_pets WHERE user_id = $1 AND id = $2 FOR UPDATE`

	sqlUpdatePet = `UPDATE user_pets SET level = $3, xp = $4 WHERE user_id = $1 AND id = $2`

	sqlSelectJobs = `
		SELECT user_id, job_name, level, xp FROM user_jobs WHERE user_id = $1 ORDER BY job_name`

	sqlSelectJobForUpdate = `
		SELECT user_id, job_name, level, xp FROM user_jobs
		WHERE user_id = $1 AND job_name = $2 FOR UPDATE`

	sqlUpsertJob = `
		INSERT INTO user_jobs (user_id, job_name, level, xp) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, job_name) DO UPDATE SET level = EXCLUDED.level, xp = EXCLUDED.xp`
)

// ProgressionRepository implements repository.Progression for PostgreSQL
type ProgressionRepository struct {
	db *pgxpool.Pool
}

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(db *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{db: db}
}

func collectLevels(ctx context.Context, q querier, query, userID string) (map[string]int, error) {
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make(map[string]int)
	for rows.Next() {
		var key string
		var level int
		if err := rows.Scan(&key, &level); err != nil {
			return nil, err
		}
		levels[key] = level
	}
	return levels, rows.Err()
}

func (r *ProgressionRepository) GetUpgradeLevels(ctx context.Context, userID string) (map[string]int, error) {
	levels, err := collectLevels(ctx, r.db, sqlSelectUpgradeLevels, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUpgrades, err)
	}
	return levels, nil
}

func (r *ProgressionRepository) GetEnhancementLevels(ctx context.Context, userID string) (map[string]int, error) {
	levels, err := collectLevels(ctx, r.db, sqlSelectEnhancementLevels, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEnhancement, err)
	}
	return levels, nil
}

func getEquipment(ctx context.Context, q querier, query, userID string) (domain.Equipment, error) {
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipment, err)
	}
	defer rows.Close()

	eq := make(domain.Equipment)
	for rows.Next() {
		var slot, item string
		if err := rows.Scan(&slot, &item); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipment, err)
		}
		eq[slot] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetEquipment, err)
	}
	return eq, nil
}

func (r *ProgressionRepository) GetEquipment(ctx context.Context, userID string) (domain.Equipment, error) {
	return getEquipment(ctx, r.db, sqlSelectEquipment, userID)
}

func scanPet(row pgx.Row) (domain.Pet, error) {
	var p domain.Pet
	err := row.Scan(&p.ID, &p.UserID, &p.PetType, &p.Name, &p.Level, &p.XP, &p.CreatedAt)
	return p, err
}

func (r *ProgressionRepository) ListPets(ctx context.Context, userID string) ([]domain.Pet, error) {
	rows, err := r.db.Query(ctx, sqlSelectPets, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPets, err)
	}
	pets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Pet, error) {
		return scanPet(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPets, err)
	}
	return pets, nil
}

func (r *ProgressionRepository) CreatePet(ctx context.Context, userID, petType, name string) (*domain.Pet, error) {
	p, err := scanPet(r.db.QueryRow(ctx, sqlInsertPet, userID, petType, name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSavePet, err)
	}
	return &p, nil
}

func (r *ProgressionRepository) ListJobs(ctx context.Context, userID string) ([]domain.JobProgress, error) {
	rows, err := r.db.Query(ctx, sqlSelectJobs, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetJobs, err)
	}
	jobs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JobProgress, error) {
		var j domain.JobProgress
		err := row.Scan(&j.UserID, &j.Job, &j.Level, &j.XP)
		return j, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetJobs, err)
	}
	return jobs, nil
}

// BeginTx starts a new progression transaction
func (r *ProgressionRepository) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	uow, err := begin(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &progressionTx{unitOfWork: uow}, nil
}

// progressionTx implements repository.ProgressionTx
type progressionTx struct {
	unitOfWork
}

func (t *progressionTx) lockedLevel(ctx context.Context, query, userID, key string) (int, error) {
	var level int
	err := t.tx.QueryRow(ctx, query, userID, key).Scan(&level)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return level, err
}

func (t *progressionTx) GetUpgradeLevelForUpdate(ctx context.Context, userID, track string) (int, error) {
	level, err := t.lockedLevel(ctx, sqlSelectUpgradeLevelForUpdate, userID, track)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetUpgrades, err)
	}
	return level, nil
}

func (t *progressionTx) SetUpgradeLevel(ctx context.Context, userID, track string, level int) error {
	if _, err := t.tx.Exec(ctx, sqlUpsertUpgradeLevel, userID, track, level); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveUpgrade, err)
	}
	return nil
}

func (t *progressionTx) GetEnhancementLevelForUpdate(ctx context.Context, userID, itemName string) (int, error) {
	level, err := t.lockedLevel(ctx, sqlSelectEnhancementForUpdate, userID, itemName)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToGetEnhancement, err)
	}
	return level, nil
}

func (t *progressionTx) SetEnhancementLevel(ctx context.Context, userID, itemName string, level int) error {
	if _, err := t.tx.Exec(ctx, sqlUpsertEnhancement, userID, itemName, level); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveEnhance, err)
	}
	return nil
}

func (t *progressionTx) GetEquipmentForUpdate(ctx context.Context, userID string) (domain.Equipment, error) {
	return getEquipment(ctx, t.tx, sqlSelectEquipment+` FOR UPDATE`, userID)
}

func (t *progressionTx) SetEquipment(ctx context.Context, userID, slot, itemName string) error {
	if _, err := t.tx.Exec(ctx, sqlUpsertEquipment, userID, slot, itemName); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveEquipment, err)
	}
	return nil
}

func (t *progressionTx) ClearEquipment(ctx context.Context, userID, slot string) error {
	if _, err := t.tx.Exec(ctx, sqlDeleteEquipment, userID, slot); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveEquipment, err)
	}
	return nil
}

func (t *progressionTx) GetPetForUpdate(ctx context.Context, userID string, petID int64) (*domain.Pet, error) {
	p, err := scanPet(t.tx.QueryRow(ctx, sqlSelectPetForUpdate, userID, petID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPets, err)
	}
	return &p, nil
}

func (t *progressionTx) SavePet(ctx context.Context, pet domain.Pet) error {
	if _, err := t.tx.Exec(ctx, sqlUpdatePet, pet.UserID, pet.ID, pet.Level, pet.XP); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePet, err)
	}
	return nil
}

func (t *progressionTx) GetJobForUpdate(ctx context.Context, userID, job string) (*domain.JobProgress, error) {
	var j domain.JobProgress
	err := t.tx.QueryRow(ctx, sqlSelectJobForUpdate, userID, job).Scan(&j.UserID, &j.Job, &j.Level, &j.XP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.JobProgress{UserID: userID, Job: job, Level: DefaultLevel}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetJobs, err)
	}
	return &j, nil
}

func (t *progressionTx) SaveJob(ctx context.Context, job domain.JobProgress) error {
	if _, err := t.tx.Exec(ctx, sqlUpsertJob, job.UserID, job.Job, job.Level, job.XP); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveJob, err)
	}
	return nil
}
