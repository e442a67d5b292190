package progression

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

// ApplyXP adds gain to a track where level N needs N*perLevel xp to advance.
// Leftover xp carries into the next level.
func ApplyXP(level int, xp, gain, perLevel int64) domain.LevelResult {
	if level < 1 {
		level = 1
	}
	res := domain.LevelResult{Level: level, XP: xp + gain}
	for res.XP >= int64(res.Level)*perLevel {
		res.XP -= int64(res.Level) * perLevel
		res.Level++
		res.LevelsGained++
	}
	return res
}

func (s *service) GetPetList(ctx context.Context, userID string) ([]domain.Pet, error) {
	pets, err := s.repo.ListPets(ctx, userID)
	if err != nil {
		return []domain.Pet{}, storageFailure(ctx, ErrMsgPetsFailed, userID, err)
	}
	return pets, nil
}

func (s *service) AdoptPet(ctx context.Context, userID, petType, name string) (*domain.Pet, error) {
	if err := validUser(userID); err != nil {
		return nil, err
	}
	if petType == "" {
		return nil, fmt.Errorf(ErrMsgEmptyFieldFmt, domain.ErrInvalidInput, "pet type")
	}
	if name == "" {
		name = petType
	}
	pet, err := s.repo.CreatePet(ctx, userID, petType, name)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgPetsFailed, userID, err)
	}
	logger.FromContext(ctx).Info(LogMsgPetAdopted, "user_id", userID, "pet_id", pet.ID, "type", petType)
	return pet, nil
}

func (s *service) GrantPetXP(ctx context.Context, userID string, petID, xp int64) (domain.LevelResult, error) {
	if xp < 0 {
		return domain.LevelResult{}, fmt.Errorf(ErrMsgNegativeXPFmt, domain.ErrInvalidInput, xp)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgPetsFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	pet, err := tx.GetPetForUpdate(ctx, userID, petID)
	if err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgPetsFailed, userID, err)
	}
	if pet == nil {
		return domain.LevelResult{}, fmt.Errorf(ErrMsgPetNotFoundFmt, domain.ErrPetNotFound, petID)
	}

	res := ApplyXP(pet.Level, pet.XP, xp, PetXPPerLevel)
	pet.Level, pet.XP = res.Level, res.XP
	if err := tx.SavePet(ctx, *pet); err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgPetsFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgPetsFailed, userID, err)
	}

	if res.LeveledUp() {
		logger.FromContext(ctx).Info(LogMsgLevelUp, "user_id", userID, "pet_id", petID, "level", res.Level)
	}
	return res, nil
}

func (s *service) GetJobs(ctx context.Context, userID string) ([]domain.JobProgress, error) {
	jobs, err := s.repo.ListJobs(ctx, userID)
	if err != nil {
		return []domain.JobProgress{}, storageFailure(ctx, ErrMsgJobsFailed, userID, err)
	}
	return jobs, nil
}

func (s *service) GrantJobXP(ctx context.Context, userID, job string, xp int64) (domain.LevelResult, error) {
	if xp < 0 {
		return domain.LevelResult{}, fmt.Errorf(ErrMsgNegativeXPFmt, domain.ErrInvalidInput, xp)
	}
	if job == "" {
		return domain.LevelResult{}, fmt.Errorf(ErrMsgEmptyFieldFmt, domain.ErrInvalidInput, "job")
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgJobsFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	progress, err := tx.GetJobForUpdate(ctx, userID, job)
	if err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgJobsFailed, userID, err)
	}

	res := ApplyXP(progress.Level, progress.XP, xp, JobXPPerLevel)
	progress.Level, progress.XP = res.Level, res.XP
	if err := tx.SaveJob(ctx, *progress); err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgJobsFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.LevelResult{}, storageFailure(ctx, ErrMsgJobsFailed, userID, err)
	}

	if res.LeveledUp() {
		logger.FromContext(ctx).Info(LogMsgLevelUp, "user_id", userID, "job", job, "level", res.Level)
	}
	return res, nil
}
