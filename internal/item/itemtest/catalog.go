// Package itemtest builds small catalogs for tests in other packages.
package itemtest

import (
	"testing"

	"github.com/osse101/JellyBot_Go/internal/item"
)

// Config returns a compact catalog definition covering every section.
func Config() *item.Config {
	return &item.Config{
		Version: "test",
		Collectibles: []item.CollectibleDef{
			{Name: "붕어", Price: 100, Category: "fish"},
			{Name: "철광석", Price: 400, Category: "ore"},
			{Name: "참나무", Price: 150, Category: "wood"},
		},
		Armor: []item.ArmorDef{
			{Name: "가죽 모자", Slot: "head", Def: 3, HP: 10, Set: "leather", Price: 2500},
			{Name: "가죽 갑옷", Slot: "body", Def: 6, HP: 20, Set: "leather"},
			{Name: "용사의 검", Slot: "weapon", Atk: 25, Set: "hero"},
			{Name: "용사의 반지", Slot: "accessory", Atk: 10, HP: 50, Set: "hero"},
			{Name: "행운의 부적", Slot: "accessory", Def: 2, HP: 15},
		},
		SetBonuses: []item.SetBonusDef{
			{Key: "leather", Name: "가죽 세트", Parts: 4, BonusDef: 5, BonusHP: 30},
			{Key: "hero", Name: "용사 세트", Parts: 2, BonusAtk: 30},
		},
		Upgrades: map[string][]item.TierDef{
			"fishing_rod": {{Name: "나무", Price: 0}, {Name: "대나무", Price: 5000}, {Name: "강화", Price: 20000}},
			"pickaxe":     {{Name: "돌", Price: 0}, {Name: "철", Price: 6000}},
			"axe":         {{Name: "돌", Price: 0}, {Name: "철", Price: 6000}},
			"sword": {
				{Name: "녹슨 검", Price: 0}, {Name: "철검", Price: 10000}, {Name: "강철검", Price: 40000},
				{Name: "미스릴 검", Price: 150000}, {Name: "용살검", Price: 500000}, {Name: "신검", Price: 2000000},
			},
		},
		Consumables: []item.ConsumableDef{
			{Name: "막대사탕", Price: 1000, Effect: &item.EffectDef{Type: "reset_cooldowns", Actions: []string{"scavenge"}}},
			{Name: "젤리 주머니", Effect: &item.EffectDef{Type: "grant_jelly", Amount: 10000}},
			{Name: "꿀떡", Price: 2000, Affinity: 5, Effect: &item.EffectDef{Type: "affinity", Amount: 5}},
			{Name: "신의 축복", Effect: &item.EffectDef{Type: "combo", Children: []item.EffectDef{
				{Type: "reset_cooldowns", Actions: []string{"mine", "fish"}},
				{Type: "grant_jelly", Amount: 50000},
			}}},
			{Name: "수상한 사탕", Effect: &item.EffectDef{Type: "random", Children: []item.EffectDef{
				{Type: "grant_jelly", Amount: 5000},
				{Type: "none", Message: "nothing"},
			}}},
			{Name: "HP 물약", Price: 500},
			{Name: "장미 꽃다발", Price: 5000, Affinity: 50},
		},
		DefaultStocks: []item.StockDef{
			{StockID: "jelly", Name: "젤리 전자", Price: 10000, Volatility: 0.05},
			{StockID: "SLIME", Name: "슬라임 바이오", Price: 3000},
		},
	}
}

// Catalog builds the catalog from Config and fails the test on error.
func Catalog(t testing.TB) *item.Catalog {
	t.Helper()
	c, err := item.NewCatalog(Config())
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return c
}
