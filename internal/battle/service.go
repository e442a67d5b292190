// Package battle runs turn-based dungeon battles and persists them between turns
// so a battle can resume after a restart or an abandoned prompt.
package battle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/JellyBot_Go/internal/concurrency"
	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/reward"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// StartOptions selects the stage of a new session. Stage 0 means the account's
// current progress.
type StartOptions struct {
	Stage          int
	Special        bool
	UpdateProgress bool
}

// GearSource supplies the equipment a battle is built from.
type GearSource interface {
	GetAggregate(ctx context.Context, userID string) (domain.EquipmentAggregate, error)
}

// Service is the dungeon: sessions, turns, progress and preferences.
type Service interface {
	Preview(ctx context.Context, userID string, opts StartOptions) (*reward.EncounterPreview, error)
	StartSession(ctx context.Context, userID string, opts StartOptions) (*domain.BattleSession, error)
	// StartFavorite starts a replay that never moves stored progress.
	StartFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (*domain.BattleSession, error)
	ApplyAction(ctx context.Context, userID string, action domain.BattleAction) (*domain.TurnResult, error)
	// GetSavedSession returns nil when no battle is in flight.
	GetSavedSession(ctx context.Context, userID string) (*domain.BattleSession, error)
	DiscardSession(ctx context.Context, userID string) error

	GetProgress(ctx context.Context, userID string) (int, error)
	GetSettings(ctx context.Context, userID string) (domain.DungeonSettings, error)
	UpdateSettings(ctx context.Context, userID string, settings domain.DungeonSettings) error
	ListFavorites(ctx context.Context, userID string) ([]domain.DungeonFavorite, error)
	AddFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) error
	RemoveFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (bool, error)
	ListRecords(ctx context.Context, userID string, limit int) ([]domain.BattleRecord, error)
}

type service struct {
	repo   repository.Dungeon
	gear   GearSource
	bus    event.Bus
	engine *Engine
	locks  *concurrency.LockManager
	rnd    func() float64
	now    func() time.Time
}

// NewService creates a new dungeon service. bus may be nil.
func NewService(repo repository.Dungeon, gear GearSource, bus event.Bus) Service {
	return &service{
		repo:   repo,
		gear:   gear,
		bus:    bus,
		engine: NewEngine(utils.RandomFloat),
		locks:  concurrency.NewLockManager(),
		rnd:    utils.RandomFloat,
		now:    time.Now,
	}
}

func storageFailure(ctx context.Context, op, userID string, err error) error {
	logger.FromContext(ctx).Error(LogMsgStorageFailure, "op", op, "user_id", userID, "error", err)
	return domain.StorageError(op, err)
}

func (s *service) resolveStage(ctx context.Context, userID string, stage int) (int, error) {
	if stage == 0 {
		progress, err := s.repo.GetProgress(ctx, userID)
		if err != nil {
			return 0, storageFailure(ctx, ErrMsgGetProgressFailed, userID, err)
		}
		stage = progress
	}
	if stage < 1 {
		return 0, fmt.Errorf(ErrMsgInvalidStageFmt, domain.ErrInvalidStage, stage)
	}
	return stage, nil
}

func (s *service) aggregate(ctx context.Context, userID string) (domain.EquipmentAggregate, error) {
	agg, err := s.gear.GetAggregate(ctx, userID)
	if err != nil {
		return domain.EquipmentAggregate{}, fmt.Errorf("%s: %w", ErrMsgGearFailed, err)
	}
	return agg, nil
}

func (s *service) Preview(ctx context.Context, userID string, opts StartOptions) (*reward.EncounterPreview, error) {
	stage, err := s.resolveStage(ctx, userID, opts.Stage)
	if err != nil {
		return nil, err
	}
	agg, err := s.aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}
	preview := reward.Preview(stage, opts.Special, agg)
	return &preview, nil
}

func (s *service) StartFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (*domain.BattleSession, error) {
	if fav.Stage < 1 {
		return nil, fmt.Errorf(ErrMsgInvalidStageFmt, domain.ErrInvalidStage, fav.Stage)
	}
	return s.StartSession(ctx, userID, StartOptions{Stage: fav.Stage, Special: fav.Special, UpdateProgress: false})
}

func (s *service) StartSession(ctx context.Context, userID string, opts StartOptions) (*domain.BattleSession, error) {
	defer s.locks.Lock(userID)()

	existing, err := s.repo.GetSession(ctx, userID)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgGetSessionFailed, userID, err)
	}
	if existing != nil {
		return nil, domain.ErrSessionExists
	}

	stage, err := s.resolveStage(ctx, userID, opts.Stage)
	if err != nil {
		return nil, err
	}
	agg, err := s.aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgStartSessionFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if opts.Special {
		ok, err := tx.RemoveItem(ctx, userID, domain.ItemDungeonTicket, 1)
		if err != nil {
			return nil, storageFailure(ctx, ErrMsgStartSessionFailed, userID, err)
		}
		if !ok {
			return nil, domain.ErrNoTicket
		}
	}

	items, err := carriedItems(ctx, tx, userID)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgStartSessionFailed, userID, err)
	}

	session := domain.BattleSession{
		UserID:         userID,
		RunID:          uuid.NewString(),
		Stage:          stage,
		Player:         reward.Player(agg),
		Monster:        reward.Monster(stage, opts.Special),
		Items:          items,
		Special:        opts.Special,
		UpdateProgress: opts.UpdateProgress,
		StartedAt:      s.now().UTC(),
	}
	if err := tx.SaveSession(ctx, session); err != nil {
		return nil, storageFailure(ctx, ErrMsgStartSessionFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ctx, ErrMsgStartSessionFailed, userID, err)
	}

	logger.FromContext(ctx).Info(LogMsgSessionStarted,
		"user_id", userID, "run_id", session.RunID, "stage", stage, "special", opts.Special)
	return &session, nil
}

// carriedItems snapshots the battle consumables held at entry.
func carriedItems(ctx context.Context, ops repository.LedgerOps, userID string) (domain.Consumables, error) {
	var c domain.Consumables
	targets := []struct {
		name string
		dst  *int
	}{
		{domain.ItemHPPotion, &c.Potions},
		{domain.ItemMPPotion, &c.MPPotions},
		{domain.ItemAttackBuff, &c.Buffs},
		{domain.ItemReviveStone, &c.Revives},
	}
	for _, t := range targets {
		n, err := ops.GetItemAmount(ctx, userID, t.name)
		if err != nil {
			return domain.Consumables{}, err
		}
		*t.dst = n
	}
	return c, nil
}

func (s *service) GetSavedSession(ctx context.Context, userID string) (*domain.BattleSession, error) {
	session, err := s.repo.GetSession(ctx, userID)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgGetSessionFailed, userID, err)
	}
	return session, nil
}

func (s *service) DiscardSession(ctx context.Context, userID string) error {
	defer s.locks.Lock(userID)()

	if err := s.repo.DeleteSession(ctx, userID); err != nil {
		return storageFailure(ctx, ErrMsgDiscardSessionFailed, userID, err)
	}
	logger.FromContext(ctx).Info(LogMsgSessionDiscard, "user_id", userID)
	return nil
}

func (s *service) GetProgress(ctx context.Context, userID string) (int, error) {
	stage, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return 1, storageFailure(ctx, ErrMsgGetProgressFailed, userID, err)
	}
	return stage, nil
}
