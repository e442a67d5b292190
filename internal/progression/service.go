// Package progression owns the slow-moving parts of an account: tool upgrades,
// armor enhancement, equipment, pets and jobs.
package progression

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// Cost is what an upgrade attempt charges before it rolls.
type Cost struct {
	Jelly     int64          `json:"jelly"`
	Materials map[string]int `json:"materials,omitempty"`
}

// Service is the progression store.
type Service interface {
	// AttemptUpgrade charges cost and then raises track by one level with the
	// given chance in percent. A cost that cannot be paid is an error and no roll happens.
	AttemptUpgrade(ctx context.Context, userID, track string, cost Cost, chance int) (*domain.UpgradeResult, error)
	UpgradeTool(ctx context.Context, userID, track string) (*domain.UpgradeResult, error)
	GetUpgradeLevels(ctx context.Context, userID string) (map[string]int, error)

	EnhanceArmor(ctx context.Context, userID, itemName string) (*domain.UpgradeResult, error)
	GetEnhancementLevels(ctx context.Context, userID string) (map[string]int, error)

	Equip(ctx context.Context, userID, slot, itemName string) (previous string, err error)
	Unequip(ctx context.Context, userID, slot string) (string, error)
	GetEquipped(ctx context.Context, userID string) (domain.Equipment, error)
	GetAggregate(ctx context.Context, userID string) (domain.EquipmentAggregate, error)

	GetPetList(ctx context.Context, userID string) ([]domain.Pet, error)
	AdoptPet(ctx context.Context, userID, petType, name string) (*domain.Pet, error)
	GrantPetXP(ctx context.Context, userID string, petID int64, xp int64) (domain.LevelResult, error)
	GetJobs(ctx context.Context, userID string) ([]domain.JobProgress, error)
	GrantJobXP(ctx context.Context, userID, job string, xp int64) (domain.LevelResult, error)
}

type service struct {
	repo    repository.Progression
	catalog *item.Catalog
	bus     event.Bus
	rnd     func() float64
}

// NewService creates a new progression service. bus may be nil.
func NewService(repo repository.Progression, catalog *item.Catalog, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		bus:     bus,
		rnd:     utils.RandomFloat,
	}
}

func storageFailure(ctx context.Context, op, userID string, err error) error {
	logger.FromContext(ctx).Error(LogMsgStorageFailure, "op", op, "user_id", userID, "error", err)
	return domain.StorageError(op, err)
}

// pay charges cost inside tx. It returns a sentinel when the account cannot
// cover it; the caller's rollback undoes a partial charge.
func pay(ctx context.Context, tx repository.ProgressionTx, userID string, cost Cost) error {
	if cost.Jelly > 0 {
		ok, err := tx.TryDebit(ctx, userID, cost.Jelly)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientFunds
		}
	}
	if len(cost.Materials) > 0 {
		ok, err := tx.RemoveItems(ctx, userID, cost.Materials)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientQuantity
		}
	}
	return nil
}

// failed sorts an error from inside a transaction into a sentinel or a storage failure.
func failed(ctx context.Context, op, userID string, err error) error {
	if domain.IsRuleError(err) {
		return err
	}
	return storageFailure(ctx, op, userID, err)
}

func (s *service) GetUpgradeLevels(ctx context.Context, userID string) (map[string]int, error) {
	levels, err := s.repo.GetUpgradeLevels(ctx, userID)
	if err != nil {
		return map[string]int{}, storageFailure(ctx, ErrMsgGetLevelsFailed, userID, err)
	}
	return levels, nil
}

func (s *service) GetEnhancementLevels(ctx context.Context, userID string) (map[string]int, error) {
	levels, err := s.repo.GetEnhancementLevels(ctx, userID)
	if err != nil {
		return map[string]int{}, storageFailure(ctx, ErrMsgGetLevelsFailed, userID, err)
	}
	return levels, nil
}

func (s *service) publish(ctx context.Context, userID string, r *domain.UpgradeResult) {
	event.PublishBestEffort(ctx, s.bus, event.NewUpgradeAttemptedEvent(userID, r))
}

func validUser(userID string) error {
	if userID == "" {
		return fmt.Errorf(ErrMsgEmptyFieldFmt, domain.ErrInvalidInput, "user id")
	}
	return nil
}
