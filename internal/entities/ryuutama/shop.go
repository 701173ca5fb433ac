package ryuutama

import "sort"

// ShopItem is a catalog entry. Only the fields relevant to Kind are set.
type ShopItem struct {
	Key           string
	Name          string
	Kind          string
	Price         int
	Size          int
	Durability    int
	Accuracy      int
	Damage        int
	Defense       int
	DefensePoints int
	Penalty       int
	Effect        string
}

var shopCatalog = map[string]ShopItem{
	"light_blade":    {Key: "light_blade", Name: "Light Blade", Kind: KindWeapon, Price: 400, Size: 1, Durability: 5, Accuracy: 1, Damage: 0, Effect: "[DEX + INT], damage [INT - 1]"},
	"blade":          {Key: "blade", Name: "Blade", Kind: KindWeapon, Price: 500, Size: 3, Durability: 5, Accuracy: 0, Damage: 0, Effect: "[STR + DEX], damage [STR]"},
	"polearm":        {Key: "polearm", Name: "Polearm", Kind: KindWeapon, Price: 600, Size: 5, Durability: 5, Accuracy: 1, Damage: 1, Effect: "[STR + INT], damage [STR + 1], two-handed"},
	"axe":            {Key: "axe", Name: "Axe", Kind: KindWeapon, Price: 550, Size: 5, Durability: 5, Accuracy: -1, Damage: 0, Effect: "[STR + STR] -1, damage [STR]"},
	"bow":            {Key: "bow", Name: "Bow", Kind: KindWeapon, Price: 450, Size: 3, Durability: 5, Accuracy: -2, Damage: 0, Effect: "[INT + DEX] -2, damage [DEX], ranged"},
	"wooden_shield":  {Key: "wooden_shield", Name: "Wooden Shield", Kind: KindShield, Price: 300, Size: 3, Durability: 5, Defense: 1, Effect: "Dodge 1 attack per round"},
	"iron_shield":    {Key: "iron_shield", Name: "Iron Shield", Kind: KindShield, Price: 800, Size: 5, Durability: 10, Defense: 2, Effect: "Dodge 1 attack per round"},
	"cloth_armor":    {Key: "cloth_armor", Name: "Cloth Armor", Kind: KindArmor, Price: 50, Size: 3, Durability: 3, DefensePoints: 1, Penalty: 0},
	"leather_armor":  {Key: "leather_armor", Name: "Leather Armor", Kind: KindArmor, Price: 500, Size: 3, Durability: 5, DefensePoints: 2, Penalty: -1},
	"chain_mail":     {Key: "chain_mail", Name: "Chain Mail", Kind: KindArmor, Price: 1000, Size: 5, Durability: 10, DefensePoints: 3, Penalty: -3},
	"travel_clothes": {Key: "travel_clothes", Name: "Travel Clothes", Kind: KindItem, Price: 50, Size: 3, Durability: 3},
	"cape":           {Key: "cape", Name: "Cape", Kind: KindItem, Price: 40, Size: 1, Durability: 3, Effect: "Protects against rain and cold"},
	"walking_stick":  {Key: "walking_stick", Name: "Walking Stick", Kind: KindItem, Price: 10, Size: 1, Durability: 3},
	"tent":           {Key: "tent", Name: "Tent (2 person)", Kind: KindItem, Price: 100, Size: 5, Durability: 3, Effect: "+1 to Camp checks"},
	"blanket":        {Key: "blanket", Name: "Blanket", Kind: KindItem, Price: 20, Size: 3, Durability: 3},
	"rations":        {Key: "rations", Name: "Rations (1 day)", Kind: KindItem, Price: 5, Size: 1, Durability: 1},
	"water_skin":     {Key: "water_skin", Name: "Water Skin", Kind: KindItem, Price: 10, Size: 1, Durability: 2, Effect: "Holds 3 days of water"},
	"healing_herb":   {Key: "healing_herb", Name: "Healing Herb", Kind: KindItem, Price: 30, Size: 1, Durability: 1, Effect: "Restores 2 HP"},
	"lantern":        {Key: "lantern", Name: "Lantern", Kind: KindItem, Price: 20, Size: 1, Durability: 3, Effect: "Ignore darkness penalties"},
	"rope":           {Key: "rope", Name: "Rope (10m)", Kind: KindItem, Price: 15, Size: 3, Durability: 3},
}

// LookupShopItem returns the catalog entry for key and whether it exists
func LookupShopItem(key string) (ShopItem, bool) {
	item, ok := shopCatalog[key]
	return item, ok
}

// ShopCatalog returns every catalog entry sorted by kind, then price, then name
func ShopCatalog() []ShopItem {
	items := make([]ShopItem, 0, len(shopCatalog))
	for _, item := range shopCatalog {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Kind != b.Kind {
			return kindOrder(a.Kind) < kindOrder(b.Kind)
		}
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Name < b.Name
	})
	return items
}

func kindOrder(kind string) int {
	switch kind {
	case KindWeapon:
		return 0
	case KindShield:
		return 1
	case KindArmor:
		return 2
	default:
		return 3
	}
}

// NewWeapon returns a weapon built from the catalog entry with the given ID
func (s ShopItem) NewWeapon(id string) Weapon {
	return Weapon{Equipment: s.equipment(id), Accuracy: s.Accuracy, Damage: s.Damage}
}

// NewShield returns a shield built from the catalog entry with the given ID
func (s ShopItem) NewShield(id string) Shield {
	return Shield{Equipment: s.equipment(id), Defense: s.Defense}
}

// NewArmor returns armor built from the catalog entry with the given ID
func (s ShopItem) NewArmor(id string) Armor {
	return Armor{Equipment: s.equipment(id), DefensePoints: s.DefensePoints, Penalty: s.Penalty}
}

// NewItem returns an outfit item built from the catalog entry with the given ID
func (s ShopItem) NewItem(id string) Item {
	return Item{Equipment: s.equipment(id), Size: s.Size}
}

func (s ShopItem) equipment(id string) Equipment {
	return Equipment{ID: id, Name: s.Name, Effect: s.Effect, Durability: s.Durability}
}
