package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/battle"
	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/progression"
	"github.com/osse101/JellyBot_Go/internal/reward"
)

// MockLedgerService mocks ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) UpdateBalance(ctx context.Context, userID string, delta int64) error {
	return m.Called(ctx, userID, delta).Error(0)
}

func (m *MockLedgerService) TryDeductBalance(ctx context.Context, userID string, amount int64) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) AddItem(ctx context.Context, userID, itemName string, amount int) error {
	return m.Called(ctx, userID, itemName, amount).Error(0)
}

func (m *MockLedgerService) RemoveItem(ctx context.Context, userID, itemName string, amount int) (bool, error) {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) TryDeductItems(ctx context.Context, userID string, items map[string]int) (bool, error) {
	args := m.Called(ctx, userID, items)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) GetInventory(ctx context.Context, userID string) ([]domain.InventorySlot, error) {
	args := m.Called(ctx, userID)
	slots, _ := args.Get(0).([]domain.InventorySlot)
	return slots, args.Error(1)
}

func (m *MockLedgerService) CheckCooldown(ctx context.Context, userID, action string, window time.Duration) (float64, error) {
	args := m.Called(ctx, userID, action, window)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockLedgerService) UpdateCooldown(ctx context.Context, userID, action string) error {
	return m.Called(ctx, userID, action).Error(0)
}

func (m *MockLedgerService) ResetCooldown(ctx context.Context, userID, action string) error {
	return m.Called(ctx, userID, action).Error(0)
}

func (m *MockLedgerService) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	return m.Called(ctx, userID, action, fn).Error(0)
}

func (m *MockLedgerService) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	acc, _ := args.Get(0).(*domain.Account)
	return acc, args.Error(1)
}

func (m *MockLedgerService) UpdateAffinity(ctx context.Context, userID string, delta int64) error {
	return m.Called(ctx, userID, delta).Error(0)
}

func (m *MockLedgerService) ClaimDaily(ctx context.Context, userID string) (*domain.DailyClaim, error) {
	args := m.Called(ctx, userID)
	claim, _ := args.Get(0).(*domain.DailyClaim)
	return claim, args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, from, to string, amount int64) (bool, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerService) UseItem(ctx context.Context, userID, itemName string) (*domain.UseResult, error) {
	args := m.Called(ctx, userID, itemName)
	res, _ := args.Get(0).(*domain.UseResult)
	return res, args.Error(1)
}

func (m *MockLedgerService) BuyItem(ctx context.Context, userID, itemName string, amount int) (domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Get(0).(domain.PurchaseResult), args.Error(1)
}

func (m *MockLedgerService) GiftItem(ctx context.Context, userID, itemName string) (*domain.GiftResult, error) {
	args := m.Called(ctx, userID, itemName)
	res, _ := args.Get(0).(*domain.GiftResult)
	return res, args.Error(1)
}

// MockMarketService mocks market.Service
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetCurrentMarketPrice(ctx context.Context, itemName string, fallbackBase int64) (domain.PriceQuote, error) {
	args := m.Called(ctx, itemName, fallbackBase)
	return args.Get(0).(domain.PriceQuote), args.Error(1)
}

func (m *MockMarketService) GetPrice(ctx context.Context, itemName string) (domain.PriceQuote, error) {
	args := m.Called(ctx, itemName)
	return args.Get(0).(domain.PriceQuote), args.Error(1)
}

func (m *MockMarketService) GetPriceHistory(ctx context.Context, itemName string, limit int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, itemName, limit)
	points, _ := args.Get(0).([]domain.PricePoint)
	return points, args.Error(1)
}

func (m *MockMarketService) GetMarketStatus(ctx context.Context) ([]domain.MarketEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.MarketEntry)
	return entries, args.Error(1)
}

func (m *MockMarketService) InitStocks(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMarketService) GetAllStocks(ctx context.Context) ([]domain.Stock, error) {
	args := m.Called(ctx)
	stocks, _ := args.Get(0).([]domain.Stock)
	return stocks, args.Error(1)
}

func (m *MockMarketService) GetStockHistory(ctx context.Context, stockID string, limit int) ([]domain.PricePoint, error) {
	args := m.Called(ctx, stockID, limit)
	points, _ := args.Get(0).([]domain.PricePoint)
	return points, args.Error(1)
}

func (m *MockMarketService) GetHoldings(ctx context.Context, userID string) ([]domain.StockHolding, error) {
	args := m.Called(ctx, userID)
	holdings, _ := args.Get(0).([]domain.StockHolding)
	return holdings, args.Error(1)
}

func (m *MockMarketService) TradeStock(ctx context.Context, userID, stockID string, amount, price int64, isBuy bool) (domain.TradeResult, error) {
	args := m.Called(ctx, userID, stockID, amount, price, isBuy)
	return args.Get(0).(domain.TradeResult), args.Error(1)
}

func (m *MockMarketService) TradeAtMarket(ctx context.Context, userID, stockID string, amount int64, isBuy bool) (domain.TradeResult, error) {
	args := m.Called(ctx, userID, stockID, amount, isBuy)
	return args.Get(0).(domain.TradeResult), args.Error(1)
}

func (m *MockMarketService) SellCollectible(ctx context.Context, userID, itemName string, amount int) (domain.SaleResult, error) {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Get(0).(domain.SaleResult), args.Error(1)
}

func (m *MockMarketService) SellItem(ctx context.Context, userID, itemName string, amount int) (domain.SaleResult, error) {
	args := m.Called(ctx, userID, itemName, amount)
	return args.Get(0).(domain.SaleResult), args.Error(1)
}

func (m *MockMarketService) RunTick(ctx context.Context) (domain.TickSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.TickSummary), args.Error(1)
}

// MockBattleService mocks battle.Service
type MockBattleService struct {
	mock.Mock
}

func (m *MockBattleService) Preview(ctx context.Context, userID string, opts battle.StartOptions) (*reward.EncounterPreview, error) {
	args := m.Called(ctx, userID, opts)
	p, _ := args.Get(0).(*reward.EncounterPreview)
	return p, args.Error(1)
}

func (m *MockBattleService) StartSession(ctx context.Context, userID string, opts battle.StartOptions) (*domain.BattleSession, error) {
	args := m.Called(ctx, userID, opts)
	s, _ := args.Get(0).(*domain.BattleSession)
	return s, args.Error(1)
}

func (m *MockBattleService) StartFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (*domain.BattleSession, error) {
	args := m.Called(ctx, userID, fav)
	s, _ := args.Get(0).(*domain.BattleSession)
	return s, args.Error(1)
}

func (m *MockBattleService) ApplyAction(ctx context.Context, userID string, action domain.BattleAction) (*domain.TurnResult, error) {
	args := m.Called(ctx, userID, action)
	res, _ := args.Get(0).(*domain.TurnResult)
	return res, args.Error(1)
}

func (m *MockBattleService) GetSavedSession(ctx context.Context, userID string) (*domain.BattleSession, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*domain.BattleSession)
	return s, args.Error(1)
}

func (m *MockBattleService) DiscardSession(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockBattleService) GetProgress(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockBattleService) GetSettings(ctx context.Context, userID string) (domain.DungeonSettings, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DungeonSettings), args.Error(1)
}

func (m *MockBattleService) UpdateSettings(ctx context.Context, userID string, settings domain.DungeonSettings) error {
	return m.Called(ctx, userID, settings).Error(0)
}

func (m *MockBattleService) ListFavorites(ctx context.Context, userID string) ([]domain.DungeonFavorite, error) {
	args := m.Called(ctx, userID)
	favs, _ := args.Get(0).([]domain.DungeonFavorite)
	return favs, args.Error(1)
}

func (m *MockBattleService) AddFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) error {
	return m.Called(ctx, userID, fav).Error(0)
}

func (m *MockBattleService) RemoveFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (bool, error) {
	args := m.Called(ctx, userID, fav)
	return args.Bool(0), args.Error(1)
}

func (m *MockBattleService) ListRecords(ctx context.Context, userID string, limit int) ([]domain.BattleRecord, error) {
	args := m.Called(ctx, userID, limit)
	records, _ := args.Get(0).([]domain.BattleRecord)
	return records, args.Error(1)
}

// MockProgressionService mocks progression.Service
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) AttemptUpgrade(ctx context.Context, userID, track string, cost progression.Cost, chance int) (*domain.UpgradeResult, error) {
	args := m.Called(ctx, userID, track, cost, chance)
	res, _ := args.Get(0).(*domain.UpgradeResult)
	return res, args.Error(1)
}

func (m *MockProgressionService) UpgradeTool(ctx context.Context, userID, track string) (*domain.UpgradeResult, error) {
	args := m.Called(ctx, userID, track)
	res, _ := args.Get(0).(*domain.UpgradeResult)
	return res, args.Error(1)
}

func (m *MockProgressionService) GetUpgradeLevels(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	levels, _ := args.Get(0).(map[string]int)
	return levels, args.Error(1)
}

func (m *MockProgressionService) EnhanceArmor(ctx context.Context, userID, itemName string) (*domain.UpgradeResult, error) {
	args := m.Called(ctx, userID, itemName)
	res, _ := args.Get(0).(*domain.UpgradeResult)
	return res, args.Error(1)
}

func (m *MockProgressionService) GetEnhancementLevels(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	levels, _ := args.Get(0).(map[string]int)
	return levels, args.Error(1)
}

func (m *MockProgressionService) Equip(ctx context.Context, userID, slot, itemName string) (string, error) {
	args := m.Called(ctx, userID, slot, itemName)
	return args.String(0), args.Error(1)
}

func (m *MockProgressionService) Unequip(ctx context.Context, userID, slot string) (string, error) {
	args := m.Called(ctx, userID, slot)
	return args.String(0), args.Error(1)
}

func (m *MockProgressionService) GetEquipped(ctx context.Context, userID string) (domain.Equipment, error) {
	args := m.Called(ctx, userID)
	eq, _ := args.Get(0).(domain.Equipment)
	return eq, args.Error(1)
}

func (m *MockProgressionService) GetAggregate(ctx context.Context, userID string) (domain.EquipmentAggregate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.EquipmentAggregate), args.Error(1)
}

func (m *MockProgressionService) GetPetList(ctx context.Context, userID string) ([]domain.Pet, error) {
	args := m.Called(ctx, userID)
	pets, _ := args.Get(0).([]domain.Pet)
	return pets, args.Error(1)
}

func (m *MockProgressionService) AdoptPet(ctx context.Context, userID, petType, name string) (*domain.Pet, error) {
	args := m.Called(ctx, userID, petType, name)
	pet, _ := args.Get(0).(*domain.Pet)
	return pet, args.Error(1)
}

func (m *MockProgressionService) GrantPetXP(ctx context.Context, userID string, petID int64, xp int64) (domain.LevelResult, error) {
	args := m.Called(ctx, userID, petID, xp)
	return args.Get(0).(domain.LevelResult), args.Error(1)
}

func (m *MockProgressionService) GetJobs(ctx context.Context, userID string) ([]domain.JobProgress, error) {
	args := m.Called(ctx, userID)
	jobs, _ := args.Get(0).([]domain.JobProgress)
	return jobs, args.Error(1)
}

func (m *MockProgressionService) GrantJobXP(ctx context.Context, userID, job string, xp int64) (domain.LevelResult, error) {
	args := m.Called(ctx, userID, job, xp)
	return args.Get(0).(domain.LevelResult), args.Error(1)
}
