package battle

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/event"
	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/repository"
	"github.com/osse101/JellyBot_Go/internal/reward"
)

// txSpender removes battle items inside the turn's transaction. The first
// storage error sticks and makes every later spend fail.
type txSpender struct {
	ctx    context.Context
	tx     repository.DungeonTx
	userID string
	err    error
}

func (sp *txSpender) Spend(itemName string) bool {
	if sp.err != nil {
		return false
	}
	ok, err := sp.tx.RemoveItem(sp.ctx, sp.userID, itemName, 1)
	if err != nil {
		sp.err = err
		return false
	}
	if !ok {
		logger.FromContext(sp.ctx).Warn(LogMsgItemMissing, "user_id", sp.userID, "item", itemName)
	}
	return ok
}

func (s *service) ApplyAction(ctx context.Context, userID string, action domain.BattleAction) (*domain.TurnResult, error) {
	if !action.Valid() {
		return nil, fmt.Errorf(ErrMsgInvalidActionFmt, domain.ErrInvalidInput, action)
	}
	defer s.locks.Lock(userID)()
	log := logger.FromContext(ctx)

	session, err := s.repo.GetSession(ctx, userID)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgGetSessionFailed, userID, err)
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}

	settings, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgSettingsFailed, userID, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgApplyActionFailed, userID, err)
	}
	defer repository.SafeRollback(ctx, tx)

	spender := &txSpender{ctx: ctx, tx: tx, userID: userID}
	t := s.engine.Apply(session, action, spender)
	if spender.err != nil {
		return nil, storageFailure(ctx, ErrMsgApplyActionFailed, userID, spender.err)
	}

	result := &domain.TurnResult{
		Session:  t.Session,
		Log:      t.Log,
		State:    t.State,
		Consumed: t.Consumed,
	}

	switch t.State {
	case domain.BattleActive:
		err = tx.SaveSession(ctx, *t.Session)
	case domain.BattleRejected:
		log.Debug(LogMsgActionRejected, "user_id", userID, "action", action)
		if t.Changed {
			err = tx.SaveSession(ctx, *t.Session)
		} else {
			result.Session = session
		}
	case domain.BattleWon:
		result.Outcome, err = s.settleWin(ctx, tx, t.Session, result)
	case domain.BattleLost:
		err = s.settleLoss(ctx, tx, t.Session, result)
	case domain.BattleFled:
		err = tx.DeleteSession(ctx, userID)
	}
	if err != nil {
		return nil, storageFailure(ctx, ErrMsgApplyActionFailed, userID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageFailure(ctx, ErrMsgApplyActionFailed, userID, err)
	}

	s.publishTurn(ctx, userID, t, result)

	if settings.LogMode == domain.LogModeDetail && result.Session != nil {
		result.Log = append(result.Log, s.statusLine(result.Session))
	}
	log.Debug(LogMsgTurnApplied, "user_id", userID, "action", action, "state", t.State, "turn", t.Session.Turn)
	return result, nil
}

// settleWin deletes the session, pays out and records the clear.
func (s *service) settleWin(ctx context.Context, tx repository.DungeonTx, session *domain.BattleSession, result *domain.TurnResult) (*domain.BattleOutcome, error) {
	userID := session.UserID
	outcome := &domain.BattleOutcome{
		Reward: reward.Amount(session.Stage, session.Special),
		Drops:  reward.RollDrops(session.Stage, session.Special, s.rnd),
	}

	if err := tx.DeleteSession(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := tx.AddBalance(ctx, userID, outcome.Reward); err != nil {
		return nil, err
	}
	for _, drop := range outcome.Drops {
		if err := tx.AddItem(ctx, userID, drop, 1); err != nil {
			return nil, err
		}
	}
	if session.UpdateProgress {
		outcome.NextStage = session.Stage + 1
		outcome.StageOpened = true
		if err := tx.AdvanceProgress(ctx, userID, outcome.NextStage); err != nil {
			return nil, err
		}
	}

	record := domain.BattleRecord{
		UserID:  userID,
		RunID:   session.RunID,
		Stage:   session.Stage,
		Result:  domain.RecordWin,
		Reward:  outcome.Reward,
		Drops:   strings.Join(outcome.Drops, ", "),
		Special: session.Special,
		Reason:  ReasonClear,
		Turns:   session.Turn,
	}
	if err := tx.InsertRecord(ctx, record); err != nil {
		return nil, err
	}

	result.Log = append(result.Log, s.engine.printer.Sprintf(MsgWonFmt, session.Monster.Name, outcome.Reward))
	if len(outcome.Drops) > 0 {
		result.Log = append(result.Log, s.engine.printer.Sprintf(MsgDropsFmt, record.Drops))
	}
	if outcome.StageOpened {
		result.Log = append(result.Log, s.engine.printer.Sprintf(MsgNextStageFmt, outcome.NextStage))
	}
	return outcome, nil
}

func (s *service) settleLoss(ctx context.Context, tx repository.DungeonTx, session *domain.BattleSession, result *domain.TurnResult) error {
	if err := tx.DeleteSession(ctx, session.UserID); err != nil {
		return err
	}
	record := domain.BattleRecord{
		UserID:  session.UserID,
		RunID:   session.RunID,
		Stage:   session.Stage,
		Result:  domain.RecordLoss,
		Special: session.Special,
		Reason:  ReasonDead,
		Turns:   session.Turn,
	}
	if err := tx.InsertRecord(ctx, record); err != nil {
		return err
	}
	result.Log = append(result.Log, s.engine.printer.Sprintf(MsgLostFmt, session.Monster.Name))
	return nil
}

func (s *service) publishTurn(ctx context.Context, userID string, t Transition, result *domain.TurnResult) {
	for name, n := range t.Consumed {
		for i := 0; i < n; i++ {
			event.PublishBestEffort(ctx, s.bus, event.NewItemUsedEvent(userID, name, event.SourceBattle))
		}
	}
	if !t.State.Terminal() {
		return
	}

	var paid int64
	if result.Outcome != nil {
		paid = result.Outcome.Reward
	}
	logger.FromContext(ctx).Info(LogMsgBattleConcluded,
		"user_id", userID, "run_id", t.Session.RunID, "stage", t.Session.Stage, "state", t.State, "reward", paid)
	event.PublishBestEffort(ctx, s.bus, event.NewBattleConcludedEvent(t.Session, t.State, paid))
}

func (s *service) statusLine(session *domain.BattleSession) string {
	p, m := session.Player, session.Monster
	return s.engine.printer.Sprintf(MsgStatusFmt, p.HP, p.MaxHP, p.MP, p.MaxMP, p.Atk, p.Def, m.Name, m.HP, m.MaxHP)
}
