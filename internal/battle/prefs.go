package battle

import (
	"context"
	"fmt"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

func (s *service) GetSettings(ctx context.Context, userID string) (domain.DungeonSettings, error) {
	settings, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		return domain.DefaultDungeonSettings(), storageFailure(ctx, ErrMsgSettingsFailed, userID, err)
	}
	return settings, nil
}

func (s *service) UpdateSettings(ctx context.Context, userID string, settings domain.DungeonSettings) error {
	if settings.LogMode != domain.LogModeSummary && settings.LogMode != domain.LogModeDetail {
		return fmt.Errorf(ErrMsgInvalidLogModeFmt, domain.ErrInvalidInput, settings.LogMode)
	}
	if err := s.repo.SaveSettings(ctx, userID, settings); err != nil {
		return storageFailure(ctx, ErrMsgSettingsFailed, userID, err)
	}
	return nil
}

func (s *service) ListFavorites(ctx context.Context, userID string) ([]domain.DungeonFavorite, error) {
	favs, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return []domain.DungeonFavorite{}, storageFailure(ctx, ErrMsgFavoritesFailed, userID, err)
	}
	return favs, nil
}

func (s *service) AddFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) error {
	if fav.Stage < 1 {
		return fmt.Errorf(ErrMsgInvalidStageFmt, domain.ErrInvalidStage, fav.Stage)
	}
	if err := s.repo.AddFavorite(ctx, userID, fav); err != nil {
		return storageFailure(ctx, ErrMsgFavoritesFailed, userID, err)
	}
	return nil
}

func (s *service) RemoveFavorite(ctx context.Context, userID string, fav domain.DungeonFavorite) (bool, error) {
	removed, err := s.repo.RemoveFavorite(ctx, userID, fav)
	if err != nil {
		return false, storageFailure(ctx, ErrMsgFavoritesFailed, userID, err)
	}
	return removed, nil
}

// ListRecords returns the newest records first. limit is clamped to [1, MaxRecordLimit].
func (s *service) ListRecords(ctx context.Context, userID string, limit int) ([]domain.BattleRecord, error) {
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	limit = min(limit, MaxRecordLimit)
	records, err := s.repo.ListRecords(ctx, userID, limit)
	if err != nil {
		return []domain.BattleRecord{}, storageFailure(ctx, ErrMsgRecordsFailed, userID, err)
	}
	return records, nil
}
