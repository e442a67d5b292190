package progression

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/repository/repotest"
)

// MockRepository implements repository.Progression for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUpgradeLevels(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockRepository) GetEnhancementLevels(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockRepository) GetEquipment(ctx context.Context, userID string) (domain.Equipment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Equipment), args.Error(1)
}

func (m *MockRepository) ListPets(ctx context.Context, userID string) ([]domain.Pet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockRepository) CreatePet(ctx context.Context, userID, petType, name string) (*domain.Pet, error) {
	args := m.Called(ctx, userID, petType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockRepository) ListJobs(ctx context.Context, userID string) ([]domain.JobProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobProgress), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ProgressionTx), args.Error(1)
}

// MockTx implements repository.ProgressionTx for testing
type MockTx struct {
	repotest.TxOps
}

func (m *MockTx) GetUpgradeLevelForUpdate(ctx context.Context, userID, track string) (int, error) {
	args := m.Called(ctx, userID, track)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) SetUpgradeLevel(ctx context.Context, userID, track string, level int) error {
	args := m.Called(ctx, userID, track, level)
	return args.Error(0)
}

func (m *MockTx) GetEnhancementLevelForUpdate(ctx context.Context, userID, itemName string) (int, error) {
	args := m.Called(ctx, userID, itemName)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) SetEnhancementLevel(ctx context.Context, userID, itemName string, level int) error {
	args := m.Called(ctx, userID, itemName, level)
	return args.Error(0)
}

func (m *MockTx) GetEquipmentForUpdate(ctx context.Context, userID string) (domain.Equipment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Equipment), args.Error(1)
}

func (m *MockTx) SetEquipment(ctx context.Context, userID, slot, itemName string) error {
	args := m.Called(ctx, userID, slot, itemName)
	return args.Error(0)
}

func (m *MockTx) ClearEquipment(ctx context.Context, userID, slot string) error {
	args := m.Called(ctx, userID, slot)
	return args.Error(0)
}

func (m *MockTx) GetPetForUpdate(ctx context.Context, userID string, petID int64) (*domain.Pet, error) {
	args := m.Called(ctx, userID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *MockTx) SavePet(ctx context.Context, pet domain.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockTx) GetJobForUpdate(ctx context.Context, userID, job string) (*domain.JobProgress, error) {
	args := m.Called(ctx, userID, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobProgress), args.Error(1)
}

func (m *MockTx) SaveJob(ctx context.Context, job domain.JobProgress) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
