package item

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/JellyBot_Go/internal/domain"
)

// ErrInvalidConfig is returned for catalogs that fail semantic validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Consumable is a usable item with its parsed effect.
type Consumable struct {
	Name      string
	Price     int64
	Affinity  int64
	Effect    Effect
	HasEffect bool
}

// Catalog is the immutable, validated game data. Safe for concurrent reads.
type Catalog struct {
	version          string
	collectibles     map[string]CollectibleDef
	collectibleNames []string
	armor            map[string]ArmorDef
	sets             map[string]domain.SetBonus
	tiers            map[string][]TierDef
	consumables      map[string]Consumable
	stocks           []StockDef
}

// NewCatalog validates cfg and indexes it.
func NewCatalog(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(cfg.Collectibles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoCollectibles)
	}

	c := &Catalog{
		version:      cfg.Version,
		collectibles: make(map[string]CollectibleDef, len(cfg.Collectibles)),
		armor:        make(map[string]ArmorDef, len(cfg.Armor)),
		sets:         make(map[string]domain.SetBonus, len(cfg.SetBonuses)),
		tiers:        make(map[string][]TierDef, len(cfg.Upgrades)),
		consumables:  make(map[string]Consumable, len(cfg.Consumables)),
	}

	for _, def := range cfg.Collectibles {
		if _, dup := c.collectibles[def.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, "collectible", def.Name)
		}
		if def.Price <= 0 {
			return nil, fmt.Errorf(ErrFmtInvalidEntry, ErrInvalidConfig, "collectible", def.Name, "has non-positive price")
		}
		c.collectibles[def.Name] = def
		c.collectibleNames = append(c.collectibleNames, def.Name)
	}

	for _, def := range cfg.SetBonuses {
		if _, dup := c.sets[def.Key]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, "set", def.Key)
		}
		c.sets[def.Key] = domain.SetBonus{
			Key:   def.Key,
			Name:  def.Name,
			Parts: def.Parts,
			Bonus: domain.StatBlock{Atk: def.BonusAtk, HP: def.BonusHP, Def: def.BonusDef},
		}
	}

	for _, def := range cfg.Armor {
		if _, dup := c.armor[def.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, "armor", def.Name)
		}
		if !domain.ValidSlot(def.Slot) {
			return nil, fmt.Errorf(ErrFmtInvalidEntry, ErrInvalidConfig, "armor", def.Name, "has an invalid slot")
		}
		if def.Set != "" {
			if _, ok := c.sets[def.Set]; !ok {
				return nil, fmt.Errorf(ErrFmtUnknownSetKey, ErrInvalidConfig, def.Name, def.Set)
			}
		}
		c.armor[def.Name] = def
	}

	for track, tiers := range cfg.Upgrades {
		if len(tiers) == 0 {
			return nil, fmt.Errorf(ErrFmtInvalidEntry, ErrInvalidConfig, "upgrade track", track, ErrMsgEmptyTiers)
		}
		c.tiers[track] = append([]TierDef(nil), tiers...)
	}

	for _, def := range cfg.Consumables {
		if _, dup := c.consumables[def.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, "consumable", def.Name)
		}
		cons := Consumable{Name: def.Name, Price: def.Price, Affinity: def.Affinity}
		if def.Effect != nil {
			eff, err := ParseEffect(*def.Effect)
			if err != nil {
				return nil, fmt.Errorf(ErrFmtInvalidEffect, ErrInvalidConfig, def.Name, err)
			}
			cons.Effect = eff
			cons.HasEffect = true
		}
		c.consumables[def.Name] = cons
	}

	seen := make(map[string]bool, len(cfg.DefaultStocks))
	for _, def := range cfg.DefaultStocks {
		def.StockID = strings.ToUpper(def.StockID)
		if seen[def.StockID] {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrInvalidConfig, "stock", def.StockID)
		}
		seen[def.StockID] = true
		if def.Volatility <= 0 {
			def.Volatility = DefaultStockVolatility
		}
		c.stocks = append(c.stocks, def)
	}

	sort.Strings(c.collectibleNames)
	return c, nil
}

// Version is the catalog file version.
func (c *Catalog) Version() string {
	return c.version
}

// BasePrice returns the static base price of a collectible.
func (c *Catalog) BasePrice(name string) (int64, bool) {
	def, ok := c.collectibles[name]
	return def.Price, ok
}

// Collectibles returns every market-tracked item, sorted by name.
func (c *Catalog) Collectibles() []CollectibleDef {
	out := make([]CollectibleDef, 0, len(c.collectibleNames))
	for _, name := range c.collectibleNames {
		out = append(out, c.collectibles[name])
	}
	return out
}

// Armor looks up an equippable item.
func (c *Catalog) Armor(name string) (ArmorDef, bool) {
	def, ok := c.armor[name]
	return def, ok
}

// SetBonuses returns the set bonus table keyed by set key.
func (c *Catalog) SetBonuses() map[string]domain.SetBonus {
	out := make(map[string]domain.SetBonus, len(c.sets))
	for k, v := range c.sets {
		out[k] = v
	}
	return out
}

// Tiers returns the tier table of an upgrade track.
func (c *Catalog) Tiers(track string) ([]TierDef, bool) {
	tiers, ok := c.tiers[track]
	return tiers, ok
}

// Consumable looks up a usable item.
func (c *Catalog) Consumable(name string) (Consumable, bool) {
	cons, ok := c.consumables[name]
	return cons, ok
}

// DefaultStocks returns the stocks seeded at start-up.
func (c *Catalog) DefaultStocks() []StockDef {
	return append([]StockDef(nil), c.stocks...)
}

// ShopPrice returns the unit price of an item sold in the shop. Consumables
// and armor with a zero price are rewards only and cannot be bought.
func (c *Catalog) ShopPrice(name string) (int64, bool) {
	if cons, ok := c.consumables[name]; ok && cons.Price > 0 {
		return cons.Price, true
	}
	if def, ok := c.armor[name]; ok && def.Price > 0 {
		return def.Price, true
	}
	return 0, false
}

// SellBackPrice is what the shop pays for one of its consumables. Armor is
// never bought back.
func (c *Catalog) SellBackPrice(name string) (int64, bool) {
	cons, ok := c.consumables[name]
	if !ok || cons.Price <= 0 {
		return 0, false
	}
	return cons.Price * ShopSellBackPercent / 100, true
}

// GiftAffinity is the affinity earned by gifting one unit of name.
func (c *Catalog) GiftAffinity(name string) (int64, bool) {
	cons, ok := c.consumables[name]
	if !ok || cons.Affinity <= 0 {
		return 0, false
	}
	return cons.Affinity, true
}
