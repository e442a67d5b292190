package progression

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// EnhanceCost is the price of enhancing an armor piece from level to level+1.
func EnhanceCost(level int) Cost {
	cost := Cost{Jelly: int64(EnhanceCostPerLevel * (level + 1))}
	switch {
	case level < SafeEnhanceBelow:
		cost.Materials = map[string]int{domain.ItemIronOre: level + 1}
	case level < DangerEnhanceFrom:
		cost.Materials = map[string]int{domain.ItemGoldIngot: level - SafeEnhanceBelow + 1}
	default:
		cost.Materials = map[string]int{domain.ItemDiamondCrystal: level - DangerEnhanceFrom + 1}
	}
	return cost
}

// EnhanceChance is the success chance in percent at level.
func EnhanceChance(level int) int {
	switch {
	case level < SafeEnhanceBelow:
		return 100
	case level < DangerEnhanceFrom:
		return max(MidChanceFloor, MidChanceBase-MidChancePerLevel*(level-SafeEnhanceBelow))
	default:
		return max(DangerChanceFloor, DangerChanceBase-DangerChancePerLevel*(level-DangerEnhanceFrom))
	}
}

// EnhanceArmor tries to raise an armor item's enhancement level. A failure from
// the danger zone drops a level unless a protection scroll is held.
func (s *service) EnhanceArmor(ctx context.Context, userID, itemName string) (*domain.UpgradeResult, error) {
	if err := validUser(userID); err != nil {
		return nil, err
	}
	if _, ok := s.catalog.Armor(itemName); !ok {
		return nil, fmt.Errorf(ErrMsgNotEnhanceableFmt, domain.ErrNotEnhanceable, itemName)
	}
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgEnhanceFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	level, err := tx.GetEnhancementLevelForUpdate(ctx, userID, itemName)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgEnhanceFailed, userID, err)
	}
	cost := EnhanceCost(level)
	if err := pay(ctx, tx, userID, cost); err != nil {
		return nil, failed(ctx, ErrMsgEnhanceFailed, userID, err)
	}

	chance := EnhanceChance(level)
	result := &domain.UpgradeResult{
		Track:     domain.TrackArmor,
		ItemName:  itemName,
		OldLevel:  level,
		NewLevel:  level,
		Cost:      cost.Jelly,
		Materials: cost.Materials,
		Chance:    chance,
		Success:   utils.Chance(chance, s.rnd),
	}

	switch {
	case result.Success:
		result.NewLevel = level + 1
	case level >= DangerEnhanceFrom:
		protected, err := tx.RemoveItem(ctx, userID, domain.ItemProtectionScroll, 1)
		if err != nil {
			return nil, storageFailure(ctx, ErrMsgEnhanceFailed, userID, err)
		}
		if protected {
			result.Protected = true
			log.Info(LogMsgScrollConsumed, "user_id", userID, "item", itemName, "level", level)
		} else {
			result.NewLevel = max(DangerEnhanceFrom, level-1)
			result.Downgraded = result.NewLevel < level
		}
	}

	if result.NewLevel != level {
		if err := tx.SetEnhancementLevel(ctx, userID, itemName, result.NewLevel); err != nil {
			return nil, storageFailure(ctx, ErrMsgEnhanceFailed, userID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ctx, ErrMsgEnhanceFailed, userID, err)
	}

	log.Info(LogMsgEnhanceRolled,
		"user_id", userID, "item", itemName, "level", result.NewLevel, "success", result.Success, "chance", chance)
	s.publish(ctx, userID, result)
	return result, nil
}
