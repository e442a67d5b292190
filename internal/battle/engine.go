package battle

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/JellyBot_Go/internal/domain"
	"github.com/osse101/JellyBot_Go/internal/utils"
)

// Spender removes one unit of a battle item from the account's inventory and
// reports whether it was there.
type Spender interface {
	Spend(itemName string) bool
}

// Transition is the result of one action applied to a snapshot.
type Transition struct {
	Session *domain.BattleSession
	Log     []string
	State   domain.BattleState
	// Changed is set when a rejected action still altered the snapshot.
	Changed  bool
	Consumed map[string]int
}

// Engine applies battle actions to snapshots. It keeps no state between calls.
type Engine struct {
	rnd     func() float64
	printer *message.Printer
}

// NewEngine creates an engine drawing its rolls from rnd.
func NewEngine(rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{rnd: rnd, printer: message.NewPrinter(language.Korean)}
}

// Apply runs action against a copy of s. The input snapshot is never modified.
func (e *Engine) Apply(s *domain.BattleSession, action domain.BattleAction, spend Spender) Transition {
	t := Transition{Session: s.Clone(), State: domain.BattleActive}

	switch action {
	case domain.ActionAttack:
		e.attack(&t, spend)
	case domain.ActionSkill:
		e.skill(&t, spend)
	case domain.ActionPotion:
		e.potion(&t, spend)
	case domain.ActionMPPotion:
		e.mpPotion(&t, spend)
	case domain.ActionBuff:
		e.buff(&t, spend)
	case domain.ActionFlee:
		t.logf(e.printer, MsgFled)
		t.State = domain.BattleFled
	default:
		t.logf(e.printer, MsgUnknownAction)
		t.State = domain.BattleRejected
	}

	if t.State != domain.BattleRejected {
		t.Session.Turn++
	}
	return t
}

func (t *Transition) logf(p *message.Printer, format string, args ...interface{}) {
	t.Log = append(t.Log, p.Sprintf(format, args...))
}

func (t *Transition) consume(itemName string) {
	if t.Consumed == nil {
		t.Consumed = make(map[string]int)
	}
	t.Consumed[itemName]++
}

// take spends one carried item. A carried item missing from the inventory is
// zeroed so the snapshot stops offering it.
func (t *Transition) take(spend Spender, itemName string, carried *int) bool {
	if *carried <= 0 {
		return false
	}
	if spend != nil && !spend.Spend(itemName) {
		*carried = 0
		t.Changed = true
		return false
	}
	*carried--
	t.consume(itemName)
	return true
}

func (e *Engine) attack(t *Transition, spend Spender) {
	s := t.Session
	dmg := max(MinDamage, s.Player.Atk)
	crit := utils.Chance(CritPercent, e.rnd)
	if crit {
		dmg = int(float64(dmg) * CritMultiplier)
	}
	s.Monster.HP = max(0, s.Monster.HP-dmg)

	line := e.printer.Sprintf(MsgAttackFmt, s.Monster.Name, dmg)
	if crit {
		line += MsgCritSuffix
	}
	t.Log = append(t.Log, line)

	e.afterStrike(t, spend)
}

func (e *Engine) skill(t *Transition, spend Spender) {
	s := t.Session
	if s.Player.MP < SkillMPCost {
		t.logf(e.printer, MsgNoMP)
		t.State = domain.BattleRejected
		return
	}
	s.Player.MP -= SkillMPCost
	dmg := max(MinDamage, int(float64(s.Player.Atk)*SkillMultiplier))
	s.Monster.HP = max(0, s.Monster.HP-dmg)
	t.logf(e.printer, MsgSkillFmt, s.Monster.Name, dmg, SkillMPCost)

	e.afterStrike(t, spend)
}

func (e *Engine) afterStrike(t *Transition, spend Spender) {
	if t.Session.Monster.HP <= 0 {
		t.State = domain.BattleWon
		return
	}
	e.retaliate(t, spend)
}

func (e *Engine) retaliate(t *Transition, spend Spender) {
	s := t.Session
	if utils.Chance(DodgePercent, e.rnd) {
		t.logf(e.printer, MsgDodgeFmt, s.Monster.Name)
		return
	}

	dmg := max(MinDamage, s.Monster.Atk-s.Player.Def)
	s.Player.HP = max(0, s.Player.HP-dmg)
	t.logf(e.printer, MsgHitFmt, s.Monster.Name, dmg)

	if s.Player.HP > 0 {
		return
	}
	// A revive missing from the inventory cannot save the player.
	if t.take(spend, domain.ItemReviveStone, &s.Items.Revives) {
		s.Player.HP = s.Player.MaxHP / 2
		t.logf(e.printer, MsgRevived)
		return
	}
	t.State = domain.BattleLost
}

func (e *Engine) potion(t *Transition, spend Spender) {
	s := t.Session
	if !t.take(spend, domain.ItemHPPotion, &s.Items.Potions) {
		t.logf(e.printer, MsgNoPotion)
		t.State = domain.BattleRejected
		return
	}
	s.Player.HP = min(s.Player.MaxHP, s.Player.HP+PotionHeal)
	t.logf(e.printer, MsgPotionFmt, PotionHeal)
}

func (e *Engine) mpPotion(t *Transition, spend Spender) {
	s := t.Session
	if !t.take(spend, domain.ItemMPPotion, &s.Items.MPPotions) {
		t.logf(e.printer, MsgNoMPPotion)
		t.State = domain.BattleRejected
		return
	}
	s.Player.MP = min(s.Player.MaxMP, s.Player.MP+MPPotionAmount)
	t.logf(e.printer, MsgMPPotionFmt, MPPotionAmount)
}

func (e *Engine) buff(t *Transition, spend Spender) {
	s := t.Session
	if s.Buffed {
		t.logf(e.printer, MsgAlreadyBuffed)
		t.State = domain.BattleRejected
		return
	}
	if !t.take(spend, domain.ItemAttackBuff, &s.Items.Buffs) {
		t.logf(e.printer, MsgNoBuff)
		t.State = domain.BattleRejected
		return
	}
	s.Player.Atk = int(float64(s.Player.Atk) * BuffMultiplier)
	s.Buffed = true
	t.logf(e.printer, MsgBuffFmt, s.Player.Atk)
}
