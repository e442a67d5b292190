package ledger

import (
	"context"
	"time"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
)

// calendarDay is the date of t in loc, as a UTC midnight for DATE columns.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// storedDay normalizes a DATE read back from storage.
func storedDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nextStreak returns the streak after a claim on today.
func nextStreak(acc *domain.Account, today time.Time) int {
	if acc.LastDaily == nil {
		return 1
	}
	if storedDay(*acc.LastDaily).Equal(today.AddDate(0, 0, -1)) {
		return acc.DailyStreak + 1
	}
	return 1
}

// DailyReward is base + min(streak-1, cap) * bonus.
func (c Config) DailyReward(streak int) int64 {
	extra := min(max(streak-1, 0), c.StreakCap)
	return c.DailyBase + int64(extra)*c.StreakBonus
}

func (s *service) ClaimDaily(ctx context.Context, userID string) (*domain.DailyClaim, error) {
	log := logger.FromContext(ctx)
	today := calendarDay(s.now(), s.config.Location)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return &domain.DailyClaim{}, storageFailure(ctx, ErrMsgClaimDailyFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return &domain.DailyClaim{}, storageFailure(ctx, ErrMsgClaimDailyFailed, userID, err)
	}

	if acc.LastDaily != nil && storedDay(*acc.LastDaily).Equal(today) {
		log.Debug(LogMsgDailyAlreadyTaken, "user_id", userID, "streak", acc.DailyStreak)
		return &domain.DailyClaim{Claimed: false, Streak: acc.DailyStreak}, nil
	}

	streak := nextStreak(acc, today)
	claim := &domain.DailyClaim{Claimed: true, Streak: streak, Reward: s.config.DailyReward(streak)}

	if _, err := tx.AddBalance(ctx, userID, claim.Reward); err != nil {
		return &domain.DailyClaim{}, storageFailure(ctx, ErrMsgClaimDailyFailed, userID, err)
	}
	if err := tx.SetDaily(ctx, userID, streak, today); err != nil {
		return &domain.DailyClaim{}, storageFailure(ctx, ErrMsgClaimDailyFailed, userID, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return &domain.DailyClaim{}, storageFailure(ctx, ErrMsgClaimDailyFailed, userID, err)
	}

	log.Info(LogMsgDailyClaimed, "user_id", userID, "streak", streak, "reward", claim.Reward)
	event.PublishBestEffort(ctx, s.bus, event.NewDailyClaimedEvent(userID, *claim))
	return claim, nil
}

// resetDaily makes today's claim available again without breaking the
// streak: the last claim is moved back to yesterday.
func (s *service) resetDaily(ctx context.Context, userID string) error {
	today := calendarDay(s.now(), s.config.Location)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	acc, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if acc.LastDaily == nil || !storedDay(*acc.LastDaily).Equal(today) {
		return nil
	}
	if err := tx.SetDaily(ctx, userID, acc.DailyStreak, today.AddDate(0, 0, -1)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgDailyReset, "user_id", userID)
	return nil
}
