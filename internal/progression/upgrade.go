package progression

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// plan prices the next level of a track given the current one.
type plan func(level int) (Cost, int, error)

// ToolCost is the price of raising a tool from level to level+1.
func ToolCost(track string, level int, tiers []item.TierDef) (Cost, error) {
	if level+1 >= len(tiers) {
		return Cost{}, fmt.Errorf(ErrMsgMaxLevelFmt, domain.ErrMaxLevel, track, level)
	}
	cost := Cost{Jelly: tiers[level+1].Price}
	if mat, ok := toolMaterials[track]; ok {
		cost.Materials = map[string]int{mat.item: (level + 1) * mat.per}
	}
	return cost, nil
}

// ToolChance is the success chance in percent of upgrading a tool at level.
func ToolChance(level int) int {
	if level < ToolGuaranteedBelow {
		return 100
	}
	return max(ToolChanceFloor, ToolChanceBase-ToolChancePerLevel*level)
}

func (s *service) AttemptUpgrade(ctx context.Context, userID, track string, cost Cost, chance int) (*domain.UpgradeResult, error) {
	if err := validUser(userID); err != nil {
		return nil, err
	}
	if track == "" {
		return nil, fmt.Errorf(ErrMsgEmptyFieldFmt, domain.ErrInvalidInput, "track")
	}
	return s.upgrade(ctx, userID, track, func(int) (Cost, int, error) {
		return cost, chance, nil
	})
}

func (s *service) UpgradeTool(ctx context.Context, userID, track string) (*domain.UpgradeResult, error) {
	if err := validUser(userID); err != nil {
		return nil, err
	}
	tiers, ok := s.catalog.Tiers(track)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownTrackFmt, domain.ErrUnknownTrack, track)
	}
	return s.upgrade(ctx, userID, track, func(level int) (Cost, int, error) {
		cost, err := ToolCost(track, level, tiers)
		if err != nil {
			return Cost{}, 0, err
		}
		return cost, ToolChance(level), nil
	})
}

// upgrade locks the track level, charges the planned cost and rolls.
func (s *service) upgrade(ctx context.Context, userID, track string, price plan) (*domain.UpgradeResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgUpgradeFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	level, err := tx.GetUpgradeLevelForUpdate(ctx, userID, track)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgUpgradeFailed, userID, err)
	}
	cost, chance, err := price(level)
	if err != nil {
		return nil, err
	}
	if err := pay(ctx, tx, userID, cost); err != nil {
		return nil, failed(ctx, ErrMsgUpgradeFailed, userID, err)
	}

	result := &domain.UpgradeResult{
		Track:     track,
		OldLevel:  level,
		NewLevel:  level,
		Cost:      cost.Jelly,
		Materials: cost.Materials,
		Chance:    chance,
		Success:   utils.Chance(chance, s.rnd),
	}
	if result.Success {
		result.NewLevel = level + 1
		if err := tx.SetUpgradeLevel(ctx, userID, track, result.NewLevel); err != nil {
			return nil, storageFailure(ctx, ErrMsgUpgradeFailed, userID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ctx, ErrMsgUpgradeFailed, userID, err)
	}

	logger.FromContext(ctx).Info(LogMsgUpgradeRolled,
		"user_id", userID, "track", track, "level", result.NewLevel, "success", result.Success, "chance", chance)
	s.publish(ctx, userID, result)
	return result, nil
}
