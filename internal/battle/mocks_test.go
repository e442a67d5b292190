package battle

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/repository/repotest"
)

// MockRepository implements repository.Dungeon for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSession(ctx context.Context, userID string) (*domain.BattleSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BattleSession), args.Error(1)
}

func (m *MockRepository) SaveSession(ctx context.Context, session domain.BattleSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockRepository) DeleteSession(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRepository) GetProgress(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetSettings(ctx context.Context, userID string) (domain.DungeonSettings, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.DungeonSettings), args.Error(1)
}

func (m *MockRepository) SaveSettings(ctx context.Context, userID string, settings domain.DungeonSettings) error {
	args := m.Called(ctx, userID, settings)
	return args.Error(0)
}

func (m *MockRepository) ListFavorites(ctx context.Context, userID string) ([]domain.DungeonFavorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DungeonFavorite), args.Error(1)
}

func (m *MockRepository) AddFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) error {
	args := m.Called(ctx, userID, fav)
	return args.Error(0)
}

func (m *MockRepository) RemoveFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (bool, error) {
	args := m.Called(ctx, userID, fav)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListRecords(ctx context.Context, userID string, limit int) ([]domain.BattleRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BattleRecord), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.DungeonTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DungeonTx), args.Error(1)
}

// MockTx implements repository.DungeonTx for testing
type MockTx struct {
	repotest.TxOps
}

func (m *MockTx) SaveSession(ctx context.Context, session domain.BattleSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockTx) DeleteSession(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTx) AdvanceProgress(ctx context.Context, userID string, stage int) error {
	args := m.Called(ctx, userID, stage)
	return args.Error(0)
}

func (m *MockTx) InsertRecord(ctx context.Context, record domain.BattleRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockGear implements GearSource for testing
type MockGear struct {
	mock.Mock
}

func (m *MockGear) GetAggregate(ctx context.Context, userID string) (domain.EquipmentAggregate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.EquipmentAggregate), args.Error(1)
}

// fakeSpender answers Spend from a fixed inventory.
type fakeSpender struct {
	held  map[string]int
	spent []string
}

func (f *fakeSpender) Spend(itemName string) bool {
	if f.held[itemName] <= 0 {
		return false
	}
	f.held[itemName]--
	f.spent = append(f.spent, itemName)
	return true
}

// scripted replays rolls in order and then repeats the last one.
func scripted(rolls ...float64) func() float64 {
	i := 0
	return func() float64 {
		if i >= len(rolls) {
			return rolls[len(rolls)-1]
		}
		r := rolls[i]
		i++
		return r
	}
}
