package item

// Config mirrors the JSON layout of configs/items.json.
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Collectibles  []CollectibleDef     `json:"collectibles"`
	Armor         []ArmorDef           `json:"armor"`
	SetBonuses    []SetBonusDef        `json:"set_bonuses"`
	Upgrades      map[string][]TierDef `json:"upgrades"`
	Consumables   []ConsumableDef      `json:"consumables"`
	DefaultStocks []StockDef           `json:"default_stocks"`
}

// CollectibleDef is an item traded on the simulated market.
type CollectibleDef struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category,omitempty"`
}

// ArmorDef is an equippable item.
type ArmorDef struct {
	Name  string `json:"name"`
	Slot  string `json:"slot"`
	Atk   int    `json:"atk,omitempty"`
	HP    int    `json:"hp,omitempty"`
	Def   int    `json:"def,omitempty"`
	Set   string `json:"set,omitempty"`
	Price int64  `json:"price,omitempty"`
}

// SetBonusDef is the bonus granted for wearing enough pieces of one set.
type SetBonusDef struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Parts    int    `json:"parts"`
	BonusAtk int    `json:"bonus_atk,omitempty"`
	BonusHP  int    `json:"bonus_hp,omitempty"`
	BonusDef int    `json:"bonus_def,omitempty"`
}

// TierDef is one level of a tool upgrade track. Index 0 is the starting tool.
type TierDef struct {
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Multiplier  float64 `json:"multiplier,omitempty"`
	Description string  `json:"description,omitempty"`
}

// ConsumableDef is a usable or battle item.
type ConsumableDef struct {
	Name     string     `json:"name"`
	Price    int64      `json:"price,omitempty"`
	Affinity int64      `json:"affinity,omitempty"`
	Effect   *EffectDef `json:"effect,omitempty"`
}

// EffectDef is the raw JSON form of an item effect.
type EffectDef struct {
	Type     string      `json:"type"`
	Actions  []string    `json:"actions,omitempty"`
	Amount   int64       `json:"amount,omitempty"`
	Message  string      `json:"message,omitempty"`
	Children []EffectDef `json:"children,omitempty"`
}

// StockDef seeds a stock on start-up.
type StockDef struct {
	StockID    string  `json:"stock_id"`
	Name       string  `json:"name"`
	Price      int64   `json:"price"`
	Volatility float64 `json:"volatility,omitempty"`
}
