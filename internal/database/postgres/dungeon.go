package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

const (
	sqlSelectSession = `SELECT snapshot FROM dungeon_sessions WHERE user_id = $1`

	sqlUpsertSession = `
		INSERT INTO dungeon_sessions (user_id, run_id, snapshot, updated_at) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			snapshot = EXCLUDED.snapshot,
			updated_at = NOW()`

	sqlDeleteSession = `DELETE FROM dungeon_sessions WHERE user_id = $1`

	sqlSelectProgress = `SELECT stage FROM dungeon_progress WHERE user_id = $1`

	sqlAdvanceProgress = `
		INSERT INTO dungeon_progress (user_id, stage) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET stage = GREATEST(dungeon_progress.stage, EXCLUDED.stage)`

	sqlSelectSettings = `SELECT auto_retry, log_mode FROM dungeon_settings WHERE user_id = $1`

	sqlUpsertSettings = `
		INSERT INTO dungeon_settings (user_id, auto_retry, log_mode) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET auto_retry = EXCLUDED.auto_retry, log_mode = EXCLUDED.log_mode`

	sqlSelectFavorites = `
		SELECT stage, is_special FROM dungeon_favorites WHERE user_id = $1 ORDER BY stage, is_special`

	sqlInsertFavorite = `
		INSERT INTO dungeon_favorites (user_id, stage, is_special) VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING`

	sqlDeleteFavorite = `DELETE FROM dungeon_favorites WHERE user_id = $1 AND stage = $2 AND is_special = $3`

	sqlInsertRecord = `
		INSERT INTO dungeon_records (user_id, run_id, stage, result, reward, drops, is_special, reason, turns)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	sqlSelectRecords = `
		SELECT id, user_id, run_id::text, stage, result, reward, drops, is_special, reason, turns, created_at
		FROM dungeon_records WHERE user_id = $1 ORDER BY id DESC LIMIT $2`
)

// DungeonRepository implements repository.Dungeon for PostgreSQL
type DungeonRepository struct {
	db *pgxpool.Pool
}

// NewDungeonRepository creates a new DungeonRepository
func NewDungeonRepository(db *pgxpool.Pool) *DungeonRepository {
	return &DungeonRepository{db: db}
}

func (r *DungeonRepository) GetSession(ctx context.Context, userID string) (*domain.BattleSession, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, sqlSelectSession, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}

	var s domain.BattleSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeSession, err)
	}
	return &s, nil
}

func saveSession(ctx context.Context, q querier, session domain.BattleSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSession, err)
	}
	if _, err := q.Exec(ctx, sqlUpsertSession, session.UserID, session.RunID, raw); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSession, err)
	}
	return nil
}

func deleteSession(ctx context.Context, q querier, userID string) error {
	if _, err := q.Exec(ctx, sqlDeleteSession, userID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSession, err)
	}
	return nil
}

func (r *DungeonRepository) SaveSession(ctx context.Context, session domain.BattleSession) error {
	return saveSession(ctx, r.db, session)
}

func (r *DungeonRepository) DeleteSession(ctx context.Context, userID string) error {
	return deleteSession(ctx, r.db, userID)
}

func (r *DungeonRepository) GetProgress(ctx context.Context, userID string) (int, error) {
	var stage int
	err := r.db.QueryRow(ctx, sqlSelectProgress, userID).Scan(&stage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultDungeonStage, nil
		}
		return DefaultDungeonStage, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return max(stage, DefaultDungeonStage), nil
}

func (r *DungeonRepository) GetSettings(ctx context.Context, userID string) (domain.DungeonSettings, error) {
	var s domain.DungeonSettings
	err := r.db.QueryRow(ctx, sqlSelectSettings, userID).Scan(&s.AutoRetry, &s.LogMode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultDungeonSettings(), nil
		}
		return domain.DefaultDungeonSettings(), fmt.Errorf("%s: %w", ErrMsgFailedToGetSettings, err)
	}
	return s, nil
}

func (r *DungeonRepository) SaveSettings(ctx context.Context, userID string, settings domain.DungeonSettings) error {
	if _, err := r.db.Exec(ctx, sqlUpsertSettings, userID, settings.AutoRetry, settings.LogMode); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSettings, err)
	}
	return nil
}

func (r *DungeonRepository) ListFavorites(ctx context.Context, userID string) ([]domain.DungeonFavorite, error) {
	rows, err := r.db.Query(ctx, sqlSelectFavorites, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFavorites, err)
	}
	favs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DungeonFavorite, error) {
		var f domain.DungeonFavorite
		err := row.Scan(&f.Stage, &f.Special)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetFavorites, err)
	}
	return favs, nil
}

func (r *DungeonRepository) AddFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) error {
	if _, err := r.db.Exec(ctx, sqlInsertFavorite, userID, fav.Stage, fav.Special); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveFavorite, err)
	}
	return nil
}

func (r *DungeonRepository) RemoveFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (bool, error) {
	tag, err := r.db.Exec(ctx, sqlDeleteFavorite, userID, fav.Stage, fav.Special)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToSaveFavorite, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *DungeonRepository) ListRecords(ctx context.Context, userID string, limit int) ([]domain.BattleRecord, error) {
	rows, err := r.db.Query(ctx, sqlSelectRecords, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecords, err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BattleRecord, error) {
		var rec domain.BattleRecord
		err := row.Scan(&rec.ID, &rec.UserID, &rec.RunID, &rec.Stage, &rec.Result, &rec.Reward,
			&rec.Drops, &rec.Special, &rec.Reason, &rec.Turns, &rec.CreatedAt)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRecords, err)
	}
	return records, nil
}

// BeginTx starts a new dungeon transaction
func (r *DungeonRepository) BeginTx(ctx context.Context) (repository.DungeonTx, error) {
	uow, err := begin(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &dungeonTx{unitOfWork: uow}, nil
}

// dungeonTx implements repository.DungeonTx
type dungeonTx struct {
	unitOfWork
}

func (t *dungeonTx) SaveSession(ctx context.Context, session domain.BattleSession) error {
	return saveSession(ctx, t.tx, session)
}

func (t *dungeonTx) DeleteSession(ctx context.Context, userID string) error {
	return deleteSession(ctx, t.tx, userID)
}

func (t *dungeonTx) AdvanceProgress(ctx context.Context, userID string, stage int) error {
	if _, err := t.tx.Exec(ctx, sqlAdvanceProgress, userID, stage); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAdvanceProgress, err)
	}
	return nil
}

func (t *dungeonTx) InsertRecord(ctx context.Context, rec domain.BattleRecord) error {
	if _, err := t.tx.Exec(ctx, sqlInsertRecord, rec.UserID, rec.RunID, rec.Stage, rec.Result,
		rec.Reward, rec.Drops, rec.Special, rec.Reason, rec.Turns); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRecord, err)
	}
	return nil
}
