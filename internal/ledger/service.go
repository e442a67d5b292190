package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/JellyBot_Go/internal/cooldown"
	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/metrics"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// Service is the account ledger: balances, inventories, cooldowns and the
// small account-level actions built on them.
//
// Storage failures are logged and reported as the operation's safe default
// (0, false, empty) together with an error wrapping domain.ErrStorage.
// Insufficient funds or items are a false result with a nil error.
type Service interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	// UpdateBalance adds delta. The balance never drops below zero.
	UpdateBalance(ctx context.Context, userID string, delta int64) error
	TryDeductBalance(ctx context.Context, userID string, amount int64) (bool, error)

	AddItem(ctx context.Context, userID, itemName string, amount int) error
	RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error)
	// TryDeductItems removes every requested item or none of them.
	TryDeductItems(ctx context.Context, userID string, items map[string]int) (bool, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error)

	// CheckCooldown returns the remaining seconds, 0 when ready.
	CheckCooldown(ctx context.Context, userID, action string, window time.Duration) (float64, error)
	UpdateCooldown(ctx context.Context, userID, action string) error
	ResetCooldown(ctx context.Context, userID, action string) error
	EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error

	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	UpdateAffinity(ctx context.Context, userID string, delta int64) error
	ClaimDaily(ctx context.Context, userID string) (*domain.DailyClaim, error)
	Transfer(ctx context.Context, from, to string, amount int64) (bool, error)
	UseItem(ctx context.Context, userID, itemName string) (*domain.UseResult, error)

	// BuyItem debits the shop price and adds the items in one transaction.
	BuyItem(ctx context.Context, userID, itemName string, amount int) (domain.PurchaseResult, error)
	// GiftItem spends one unit of a gift item for its affinity.
	GiftItem(ctx context.Context, userID, itemName string) (*domain.GiftResult, error)
}

// Config holds the daily reward rules.
type Config struct {
	Location    *time.Location
	DailyBase   int64
	StreakBonus int64
	StreakCap   int
}

// DefaultConfig returns the stock daily reward rules.
func DefaultConfig() Config {
	return Config{
		Location:    DefaultLocation,
		DailyBase:   DefaultDailyBaseReward,
		StreakBonus: DefaultDailyStreakBonus,
		StreakCap:   DefaultDailyStreakCap,
	}
}

type service struct {
	repo      repository.Ledger
	cooldowns cooldown.Service
	catalog   *item.Catalog
	bus       event.Bus
	config    Config
	rnd       func() float64
	now       func() time.Time
}

// NewService creates a new ledger service. bus may be nil.
func NewService(repo repository.Ledger, cooldowns cooldown.Service, catalog *item.Catalog, bus event.Bus, config Config) Service {
	if config.Location == nil {
		config.Location = DefaultLocation
	}
	return &service{
		repo:      repo,
		cooldowns: cooldowns,
		catalog:   catalog,
		bus:       bus,
		config:    config,
		rnd:       utils.RandomFloat,
		now:       time.Now,
	}
}

// storageFailure logs err at the operation boundary and wraps it.
func storageFailure(ctx context.Context, op, userID string, err error) error {
	logger.FromContext(ctx).Error(LogMsgStorageFailure, "op", op, "user_id", userID, "error", err)
	return domain.StorageError(op, err)
}

func (s *service) GetBalance(ctx context.Context, userID string) (int64, error) {
	acc, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return 0, storageFailure(ctx, ErrMsgGetBalanceFailed, userID, err)
	}
	return acc.Balance, nil
}

func (s *service) UpdateBalance(ctx context.Context, userID string, delta int64) error {
	if delta == 0 {
		return nil
	}
	if _, err := s.repo.AddBalance(ctx, userID, delta); err != nil {
		return storageFailure(ctx, ErrMsgUpdateBalanceFailed, userID, err)
	}
	return nil
}

func (s *service) TryDeductBalance(ctx context.Context, userID string, amount int64) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	ok, err := s.repo.TryDebit(ctx, userID, amount)
	metrics.RecordDebit(metrics.KindBalance, ok, err)
	if err != nil {
		return false, storageFailure(ctx, ErrMsgDebitFailed, userID, err)
	}
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgDebitRejected, "user_id", userID, "amount", amount)
	}
	return ok, nil
}

func (s *service) AddItem(ctx context.Context, userID, itemName string, amount int) error {
	if amount < 0 {
		return fmt.Errorf(ErrMsgNegativeItemAmountFmt, domain.ErrInvalidInput, amount)
	}
	if amount == 0 {
		return nil
	}
	if err := s.repo.AddItem(ctx, userID, itemName, amount); err != nil {
		return storageFailure(ctx, ErrMsgAddItemFailed, userID, err)
	}
	return nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error) {
	if amount <= 0 {
		return true, nil
	}
	ok, err := s.repo.RemoveItem(ctx, userID, itemName, amount)
	metrics.RecordDebit(metrics.KindItems, ok, err)
	if err != nil {
		return false, storageFailure(ctx, ErrMsgRemoveItemFailed, userID, err)
	}
	return ok, nil
}

func (s *service) TryDeductItems(ctx context.Context, userID string, items map[string]int) (bool, error) {
	if len(items) == 0 {
		return true, nil
	}
	ok, err := s.repo.RemoveItems(ctx, userID, items)
	metrics.RecordDebit(metrics.KindItems, ok, err)
	if err != nil {
		return false, storageFailure(ctx, ErrMsgRemoveItemsFailed, userID, err)
	}
	if !ok {
		logger.FromContext(ctx).Debug(LogMsgItemDebitRejected, "user_id", userID, "items", items)
	}
	return ok, nil
}

func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error) {
	slots, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return []domain.InventorySlot{}, storageFailure(ctx, ErrMsgGetInventoryFailed, userID, err)
	}
	return slots, nil
}

func (s *service) CheckCooldown(ctx context.Context, userID, action string, window time.Duration) (float64, error) {
	remaining, err := s.cooldowns.CheckCooldown(ctx, userID, action, window)
	if err != nil {
		return 0, storageFailure(ctx, ErrMsgCheckCooldownFailed, userID, err)
	}
	return remaining.Seconds(), nil
}

func (s *service) UpdateCooldown(ctx context.Context, userID, action string) error {
	if err := s.cooldowns.UpdateCooldown(ctx, userID, action); err != nil {
		return storageFailure(ctx, ErrMsgUpdateCooldownFailed, userID, err)
	}
	return nil
}

func (s *service) ResetCooldown(ctx context.Context, userID, action string) error {
	if err := s.cooldowns.ResetCooldown(ctx, userID, action); err != nil {
		return storageFailure(ctx, ErrMsgResetCooldownFailed, userID, err)
	}
	return nil
}

// EnforceCooldown passes fn's own error through untouched. Cooldown misses
// surface as domain.CooldownError.
func (s *service) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	var fnErr error
	err := s.cooldowns.EnforceCooldown(ctx, userID, action, func() error {
		fnErr = fn()
		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil, errors.Is(err, domain.ErrOnCooldown):
		return err
	default:
		return storageFailure(ctx, ErrMsgUpdateCooldownFailed, userID, err)
	}
}

func (s *service) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	acc, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return &domain.Account{UserID: userID}, storageFailure(ctx, ErrMsgGetAccountFailed, userID, err)
	}
	return acc, nil
}

func (s *service) UpdateAffinity(ctx context.Context, userID string, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := s.repo.AddAffinity(ctx, userID, delta); err != nil {
		return storageFailure(ctx, ErrMsgUpdateAffinityFailed, userID, err)
	}
	return nil
}

func (s *service) Transfer(ctx context.Context, from, to string, amount int64) (bool, error) {
	if from == "" || to == "" {
		return false, fmt.Errorf(ErrMsgEmptyUserFmt, domain.ErrInvalidInput)
	}
	if from == to {
		return false, fmt.Errorf(ErrMsgSelfTransferFmt, domain.ErrInvalidInput)
	}
	if amount <= 0 {
		return true, nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return false, storageFailure(ctx, ErrMsgTransferFailed, from, err)
	}
	defer repository.SafeRollback(ctx, tx)

	ok, err := tx.TransferBalance(ctx, from, to, amount)
	metrics.RecordDebit(metrics.KindBalance, ok, err)
	if err != nil {
		return false, storageFailure(ctx, ErrMsgTransferFailed, from, err)
	}
	if !ok {
		return false, nil
	}
	if err := tx.Commit(ctx); err != nil {
		return false, storageFailure(ctx, ErrMsgTransferFailed, from, err)
	}

	logger.FromContext(ctx).Info(LogMsgTransferDone, "from", from, "to", to, "amount", amount)
	return true, nil
}
