package item

import (
	"errors"
	"fmt"
)

// EffectKind identifies what using an item does.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectResetCooldowns
	EffectGrantJelly
	EffectAffinity
	// EffectCombo applies every child in order.
	EffectCombo
	// EffectRandom applies one child picked uniformly.
	EffectRandom
)

var effectKindNames = map[string]EffectKind{
	"none":            EffectNone,
	"reset_cooldowns": EffectResetCooldowns,
	"grant_jelly":     EffectGrantJelly,
	"affinity":        EffectAffinity,
	"combo":           EffectCombo,
	"random":          EffectRandom,
}

func (k EffectKind) String() string {
	for name, kind := range effectKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Effect is a parsed item effect. Only the fields relevant to Kind are set.
type Effect struct {
	Kind     EffectKind
	Actions  []string
	Amount   int64
	Children []Effect
	Message  string
}

var errInvalidEffect = errors.New("invalid effect")

// ParseEffect converts the JSON form into an Effect, rejecting shapes that
// could not be applied.
func ParseEffect(def EffectDef) (Effect, error) {
	return parseEffect(def, 0)
}

func parseEffect(def EffectDef, depth int) (Effect, error) {
	if depth > maxEffectDepth {
		return Effect{}, fmt.Errorf("%w: %s", errInvalidEffect, ErrMsgEffectTooDeep)
	}

	kind, ok := effectKindNames[def.Type]
	if !ok {
		return Effect{}, fmt.Errorf("%w: %s %q", errInvalidEffect, ErrMsgUnknownEffect, def.Type)
	}

	eff := Effect{Kind: kind, Message: def.Message}
	switch kind {
	case EffectResetCooldowns:
		if len(def.Actions) == 0 {
			return Effect{}, fmt.Errorf("%w: %s", errInvalidEffect, ErrMsgEffectNoActions)
		}
		eff.Actions = append([]string(nil), def.Actions...)
	case EffectGrantJelly, EffectAffinity:
		if def.Amount <= 0 {
			return Effect{}, fmt.Errorf("%w: %s", errInvalidEffect, ErrMsgEffectNoAmount)
		}
		eff.Amount = def.Amount
	case EffectCombo, EffectRandom:
		if len(def.Children) == 0 {
			return Effect{}, fmt.Errorf("%w: %s", errInvalidEffect, ErrMsgEffectNoChildren)
		}
		eff.Children = make([]Effect, 0, len(def.Children))
		for _, child := range def.Children {
			c, err := parseEffect(child, depth+1)
			if err != nil {
				return Effect{}, err
			}
			eff.Children = append(eff.Children, c)
		}
	}
	return eff, nil
}
