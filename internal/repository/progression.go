package repository

import (
	"context"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// Progression defines persistence for upgrades, equipment, pets and jobs
type Progression interface {
	GetUpgradeLevels(ctx context.Context, userID string) (map[string]int, error)
	GetEnhancementLevels(ctx context.Context, userID string) (map[string]int, error)
	GetEquipment(ctx context.Context, userID string) (domain.Equipment, error)
	ListPets(ctx context.Context, userID string) ([]domain.Pet, error)
	CreatePet(ctx context.Context, userID, petType, name string) (*domain.Pet, error)
	ListJobs(ctx context.Context, userID string) ([]domain.JobProgress, error)
	BeginTx(ctx context.Context) (ProgressionTx, error)
}

// ProgressionTx is a progression transaction. It carries the ledger operations
// so costs are paid in the same transaction as the level change.
type ProgressionTx interface {
	Tx
	LedgerOps

	GetUpgradeLevelForUpdate(ctx context.Context, userID, track string) (int, error)
	SetUpgradeLevel(ctx context.Context, userID, track string, level int) error

	GetEnhancementLevelForUpdate(ctx context.Context, userID, itemName string) (int, error)
	SetEnhancementLevel(ctx context.Context, userID, itemName string, level int) error

	GetEquipmentForUpdate(ctx context.Context, userID string) (domain.Equipment, error)
	SetEquipment(ctx context.Context, userID, slot, itemName string) error
	ClearEquipment(ctx context.Context, userID, slot string) error

	// GetPetForUpdate returns nil when the pet does not belong to userID.
	GetPetForUpdate(ctx context.Context, userID string, petID int64) (*domain.Pet, error)
	SavePet(ctx context.Context, pet domain.Pet) error

	// GetJobForUpdate returns a level 1 job when none is stored yet.
	GetJobForUpdate(ctx context.Context, userID, job string) (*domain.JobProgress, error)
	SaveJob(ctx context.Context, job domain.JobProgress) error
}
