package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/item"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

// UseItem consumes one unit and applies the item's effect. Items without a
// usable effect are rejected before anything is removed.
func (s *service) UseItem(ctx context.Context, userID, itemName string) (*domain.UseResult, error) {
	cons, ok := s.catalog.Consumable(itemName)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownItemFmt, domain.ErrItemNotFound, itemName)
	}
	if !cons.HasEffect || cons.Effect.Kind == item.EffectNone {
		return nil, fmt.Errorf(ErrMsgNoEffectFmt, domain.ErrNoEffect, itemName)
	}

	removed, err := s.RemoveItem(ctx, userID, itemName, 1)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientQuantity, itemName)
	}

	result := &domain.UseResult{ItemName: itemName}
	var messages []string
	if err := s.applyEffect(ctx, userID, cons.Effect, result, &messages); err != nil {
		return nil, storageFailure(ctx, ErrMsgApplyEffectFailed, userID, err)
	}
	result.Message = strings.Join(messages, " ")

	logger.FromContext(ctx).Info(LogMsgItemUsed, "user_id", userID, "item", itemName, "kind", cons.Effect.Kind.String())
	event.PublishBestEffort(ctx, s.bus, event.NewItemUsedEvent(userID, itemName, event.SourceInventory))
	return result, nil
}

func (s *service) applyEffect(ctx context.Context, userID string, eff item.Effect, result *domain.UseResult, messages *[]string) error {
	switch eff.Kind {
	case item.EffectResetCooldowns:
		for _, action := range eff.Actions {
			if err := s.resetAction(ctx, userID, action); err != nil {
				return err
			}
			result.CooldownsReset = append(result.CooldownsReset, action)
		}
	case item.EffectGrantJelly:
		if _, err := s.repo.AddBalance(ctx, userID, eff.Amount); err != nil {
			return err
		}
		result.JellyGranted += eff.Amount
	case item.EffectAffinity:
		if err := s.repo.AddAffinity(ctx, userID, eff.Amount); err != nil {
			return err
		}
		result.AffinityGranted += eff.Amount
	case item.EffectCombo:
		for _, child := range eff.Children {
			if err := s.applyEffect(ctx, userID, child, result, messages); err != nil {
				return err
			}
		}
	case item.EffectRandom:
		idx := min(int(s.rnd()*float64(len(eff.Children))), len(eff.Children)-1)
		if err := s.applyEffect(ctx, userID, eff.Children[idx], result, messages); err != nil {
			return err
		}
	case item.EffectNone:
	}

	if eff.Message != "" {
		*messages = append(*messages, eff.Message)
	}
	return nil
}

// resetAction clears a cooldown. The daily claim is tracked by calendar day
// rather than a cooldown mark, so it gets its own reset.
func (s *service) resetAction(ctx context.Context, userID, action string) error {
	if action == domain.ActionDaily {
		return s.resetDaily(ctx, userID)
	}
	return s.cooldowns.ResetCooldown(ctx, userID, action)
}
