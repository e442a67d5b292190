package progression

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

// Equip moves one itemName from the inventory into slot and returns whatever
// was there before to the inventory.
func (s *service) Equip(ctx context.Context, userID, slot, itemName string) (string, error) {
	if err := validUser(userID); err != nil {
		return "", err
	}
	if !domain.ValidSlot(slot) {
		return "", fmt.Errorf(ErrMsgInvalidSlotFmt, domain.ErrInvalidSlot, slot)
	}
	def, ok := s.catalog.Armor(itemName)
	if !ok || def.Slot != slot {
		return "", fmt.Errorf(ErrMsgNotEquippableFmt, domain.ErrNotEquippable, itemName, slot)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", storageFailure(ctx, ErrMsgEquipFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	current, err := tx.GetEquipmentForUpdate(ctx, userID)
	if err != nil {
		return "", storageFailure(ctx, ErrMsgEquipFailed, userID, err)
	}
	removed, err := tx.RemoveItem(ctx, userID, itemName, 1)
	if err != nil {
		return "", storageFailure(ctx, ErrMsgEquipFailed, userID, err)
	}
	if !removed {
		return "", fmt.Errorf(ErrMsgInsufficientItemFmt, domain.ErrInsufficientQuantity, itemName)
	}

	previous := current[slot]
	if previous != "" {
		if err := tx.AddItem(ctx, userID, previous, 1); err != nil {
			return "", storageFailure(ctx, ErrMsgEquipFailed, userID, err)
		}
	}
	if err := tx.SetEquipment(ctx, userID, slot, itemName); err != nil {
		return "", storageFailure(ctx, ErrMsgEquipFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", storageFailure(ctx, ErrMsgEquipFailed, userID, err)
	}

	logger.FromContext(ctx).Info(LogMsgEquipped, "user_id", userID, "slot", slot, "item", itemName, "previous", previous)
	return previous, nil
}

// Unequip empties slot and returns its item to the inventory.
func (s *service) Unequip(ctx context.Context, userID, slot string) (string, error) {
	if !domain.ValidSlot(slot) {
		return "", fmt.Errorf(ErrMsgInvalidSlotFmt, domain.ErrInvalidSlot, slot)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", storageFailure(ctx, ErrMsgUnequipFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	current, err := tx.GetEquipmentForUpdate(ctx, userID)
	if err != nil {
		return "", storageFailure(ctx, ErrMsgUnequipFailed, userID, err)
	}
	itemName := current[slot]
	if itemName == "" {
		return "", domain.ErrNothingInSlot
	}
	if err := tx.ClearEquipment(ctx, userID, slot); err != nil {
		return "", storageFailure(ctx, ErrMsgUnequipFailed, userID, err)
	}
	if err := tx.AddItem(ctx, userID, itemName, 1); err != nil {
		return "", storageFailure(ctx, ErrMsgUnequipFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", storageFailure(ctx, ErrMsgUnequipFailed, userID, err)
	}

	logger.FromContext(ctx).Info(LogMsgUnequipped, "user_id", userID, "slot", slot, "item", itemName)
	return itemName, nil
}

func (s *service) GetEquipped(ctx context.Context, userID string) (domain.Equipment, error) {
	eq, err := s.repo.GetEquipment(ctx, userID)
	if err != nil {
		return domain.Equipment{}, storageFailure(ctx, ErrMsgGetEquipmentFailed, userID, err)
	}
	return eq, nil
}

// GetAggregate collects the sword level and every equipped armor piece with its
// enhancement level, in slot order.
func (s *service) GetAggregate(ctx context.Context, userID string) (domain.EquipmentAggregate, error) {
	agg := domain.EquipmentAggregate{SetBonuses: s.catalog.SetBonuses()}

	upgrades, err := s.repo.GetUpgradeLevels(ctx, userID)
	if err != nil {
		return agg, storageFailure(ctx, ErrMsgGetEquipmentFailed, userID, err)
	}
	agg.WeaponLevel = upgrades[domain.TrackSword]

	eq, err := s.repo.GetEquipment(ctx, userID)
	if err != nil {
		return agg, storageFailure(ctx, ErrMsgGetEquipmentFailed, userID, err)
	}
	if len(eq) == 0 {
		return agg, nil
	}
	enhancements, err := s.repo.GetEnhancementLevels(ctx, userID)
	if err != nil {
		return agg, storageFailure(ctx, ErrMsgGetEquipmentFailed, userID, err)
	}

	for _, slot := range domain.EquipmentSlots {
		name := eq[slot]
		if name == "" {
			continue
		}
		def, ok := s.catalog.Armor(name)
		if !ok {
			logger.FromContext(ctx).Warn(LogMsgMissingArmor, "user_id", userID, "slot", slot, "item", name)
			continue
		}
		agg.Pieces = append(agg.Pieces, domain.ArmorPiece{
			Slot:     slot,
			ItemName: name,
			Base:     domain.StatBlock{Atk: def.Atk, HP: def.HP, Def: def.Def},
			Set:      def.Set,
			Level:    enhancements[name],
		})
	}
	return agg, nil
}
