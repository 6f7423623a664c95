package swarm

// ShopItem identifies a purchasable upgrade.
type ShopItem int

const (
	ShopDamage ShopItem = iota
	ShopFireRate
	ShopWing
)

func (i ShopItem) String() string {
	switch i {
	case ShopFireRate:
		return "fire rate"
	case ShopWing:
		return "wingman"
	default:
		return "damage"
	}
}

// shopItems is the fixed menu order.
var shopItems = []ShopItem{ShopDamage, ShopFireRate, ShopWing}

// itemLevel returns the player's current level for an item.
func (w *World) itemLevel(item ShopItem) int {
	switch item {
	case ShopFireRate:
		return w.upgrades.FireRate
	case ShopWing:
		return w.upgrades.Wing
	default:
		return w.upgrades.Damage
	}
}

// ItemCost returns the gold price of the next level: the base cost grown
// by CostGrowth percent per level already owned.
func (w *World) ItemCost(item ShopItem) int {
	var base int
	switch item {
	case ShopFireRate:
		base = w.cfg.Shop.FireRateCost
	case ShopWing:
		base = w.cfg.Shop.WingCost
	default:
		base = w.cfg.Shop.DamageCost
	}
	cost := base
	for i := 0; i < w.itemLevel(item); i++ {
		cost = cost * (100 + w.cfg.Shop.CostGrowth) / 100
	}
	return cost
}

// CanBuy reports whether the item is still purchasable and affordable.
func (w *World) CanBuy(item ShopItem) bool {
	if w.itemLevel(item) >= w.cfg.Shop.MaxLevel {
		return false
	}
	return w.gold >= w.ItemCost(item)
}

// Buy spends gold on one upgrade level. Buying a wingman also adds the
// companion immediately.
func (w *World) Buy(item ShopItem) bool {
	if !w.CanBuy(item) {
		return false
	}
	w.gold -= w.ItemCost(item)
	switch item {
	case ShopFireRate:
		w.upgrades.FireRate++
	case ShopWing:
		w.upgrades.Wing++
		w.setWingSize(w.wingSize + 1)
	default:
		w.upgrades.Damage++
	}
	return true
}
