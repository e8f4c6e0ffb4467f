// Package position is the static registry of equipment positions. Each
// position maps to explicit field accessors resolved once at init, so
// slot lookups are type-checked instead of built from field-name strings.
package position

import (
	"fmt"

	"preset-tracker/internal/domain"
)

type Kind int

const (
	KindEquip Kind = iota
	KindCard
)

// Accessor reads one slot value from a preset model. A zero value means
// the slot is empty.
type Accessor func(*domain.PresetModel) int

// Definition describes one registered position. Equip positions carry an
// item accessor and up to three enchant accessors; card positions carry
// one to four independent card accessors.
type Definition struct {
	ID       string
	Kind     Kind
	Item     Accessor
	Enchants []Accessor
	Cards    []Accessor
}

const (
	Weapon                = "weapon"
	WeaponCard            = "weaponCard"
	LeftWeapon            = "leftWeapon"
	LeftWeaponCard        = "leftWeaponCard"
	Shield                = "shield"
	ShieldCard            = "shieldCard"
	HeadUpper             = "headUpper"
	HeadUpperCard         = "headUpperCard"
	HeadMiddle            = "headMiddle"
	HeadMiddleCard        = "headMiddleCard"
	HeadLower             = "headLower"
	Armor                 = "armor"
	ArmorCard             = "armorCard"
	Garment               = "garment"
	GarmentCard           = "garmentCard"
	Boot                  = "boot"
	BootCard              = "bootCard"
	AccLeft               = "accLeft"
	AccLeftCard           = "accLeftCard"
	AccRight              = "accRight"
	AccRightCard          = "accRightCard"
	CostumeEnchantUpper   = "costumeEnchantUpper"
	CostumeEnchantMiddle  = "costumeEnchantMiddle"
	CostumeEnchantLower   = "costumeEnchantLower"
	CostumeEnchantGarment = "costumeEnchantGarment"
	ShadowWeapon          = "shadowWeapon"
	ShadowShield          = "shadowShield"
	ShadowArmor           = "shadowArmor"
	ShadowBoot            = "shadowBoot"
	ShadowEarring         = "shadowEarring"
	ShadowPendant         = "shadowPendant"
)

func equip(id string, item Accessor, enchants ...Accessor) Definition {
	return Definition{ID: id, Kind: KindEquip, Item: item, Enchants: enchants}
}

func card(id string, cards ...Accessor) Definition {
	return Definition{ID: id, Kind: KindCard, Cards: cards}
}

var definitions = []Definition{
	equip(Weapon,
		func(m *domain.PresetModel) int { return m.Weapon },
		func(m *domain.PresetModel) int { return m.WeaponEnchant1 },
		func(m *domain.PresetModel) int { return m.WeaponEnchant2 },
		func(m *domain.PresetModel) int { return m.WeaponEnchant3 }),
	card(WeaponCard,
		func(m *domain.PresetModel) int { return m.WeaponCard1 },
		func(m *domain.PresetModel) int { return m.WeaponCard2 },
		func(m *domain.PresetModel) int { return m.WeaponCard3 },
		func(m *domain.PresetModel) int { return m.WeaponCard4 }),
	equip(LeftWeapon,
		func(m *domain.PresetModel) int { return m.LeftWeapon },
		func(m *domain.PresetModel) int { return m.LeftWeaponEnchant1 },
		func(m *domain.PresetModel) int { return m.LeftWeaponEnchant2 },
		func(m *domain.PresetModel) int { return m.LeftWeaponEnchant3 }),
	card(LeftWeaponCard,
		func(m *domain.PresetModel) int { return m.LeftWeaponCard1 },
		func(m *domain.PresetModel) int { return m.LeftWeaponCard2 },
		func(m *domain.PresetModel) int { return m.LeftWeaponCard3 },
		func(m *domain.PresetModel) int { return m.LeftWeaponCard4 }),
	equip(Shield,
		func(m *domain.PresetModel) int { return m.Shield },
		func(m *domain.PresetModel) int { return m.ShieldEnchant1 },
		func(m *domain.PresetModel) int { return m.ShieldEnchant2 },
		func(m *domain.PresetModel) int { return m.ShieldEnchant3 }),
	card(ShieldCard,
		func(m *domain.PresetModel) int { return m.ShieldCard }),
	equip(HeadUpper,
		func(m *domain.PresetModel) int { return m.HeadUpper },
		func(m *domain.PresetModel) int { return m.HeadUpperEnchant1 },
		func(m *domain.PresetModel) int { return m.HeadUpperEnchant2 },
		func(m *domain.PresetModel) int { return m.HeadUpperEnchant3 }),
	card(HeadUpperCard,
		func(m *domain.PresetModel) int { return m.HeadUpperCard }),
	equip(HeadMiddle,
		func(m *domain.PresetModel) int { return m.HeadMiddle },
		func(m *domain.PresetModel) int { return m.HeadMiddleEnchant1 },
		func(m *domain.PresetModel) int { return m.HeadMiddleEnchant2 },
		func(m *domain.PresetModel) int { return m.HeadMiddleEnchant3 }),
	card(HeadMiddleCard,
		func(m *domain.PresetModel) int { return m.HeadMiddleCard }),
	equip(HeadLower,
		func(m *domain.PresetModel) int { return m.HeadLower },
		func(m *domain.PresetModel) int { return m.HeadLowerEnchant1 },
		func(m *domain.PresetModel) int { return m.HeadLowerEnchant2 },
		func(m *domain.PresetModel) int { return m.HeadLowerEnchant3 }),
	equip(Armor,
		func(m *domain.PresetModel) int { return m.Armor },
		func(m *domain.PresetModel) int { return m.ArmorEnchant1 },
		func(m *domain.PresetModel) int { return m.ArmorEnchant2 },
		func(m *domain.PresetModel) int { return m.ArmorEnchant3 }),
	card(ArmorCard,
		func(m *domain.PresetModel) int { return m.ArmorCard }),
	equip(Garment,
		func(m *domain.PresetModel) int { return m.Garment },
		func(m *domain.PresetModel) int { return m.GarmentEnchant1 },
		func(m *domain.PresetModel) int { return m.GarmentEnchant2 },
		func(m *domain.PresetModel) int { return m.GarmentEnchant3 }),
	card(GarmentCard,
		func(m *domain.PresetModel) int { return m.GarmentCard }),
	equip(Boot,
		func(m *domain.PresetModel) int { return m.Boot },
		func(m *domain.PresetModel) int { return m.BootEnchant1 },
		func(m *domain.PresetModel) int { return m.BootEnchant2 },
		func(m *domain.PresetModel) int { return m.BootEnchant3 }),
	card(BootCard,
		func(m *domain.PresetModel) int { return m.BootCard }),
	equip(AccLeft,
		func(m *domain.PresetModel) int { return m.AccLeft },
		func(m *domain.PresetModel) int { return m.AccLeftEnchant1 },
		func(m *domain.PresetModel) int { return m.AccLeftEnchant2 },
		func(m *domain.PresetModel) int { return m.AccLeftEnchant3 }),
	card(AccLeftCard,
		func(m *domain.PresetModel) int { return m.AccLeftCard }),
	equip(AccRight,
		func(m *domain.PresetModel) int { return m.AccRight },
		func(m *domain.PresetModel) int { return m.AccRightEnchant1 },
		func(m *domain.PresetModel) int { return m.AccRightEnchant2 },
		func(m *domain.PresetModel) int { return m.AccRightEnchant3 }),
	card(AccRightCard,
		func(m *domain.PresetModel) int { return m.AccRightCard }),
	equip(CostumeEnchantUpper,
		func(m *domain.PresetModel) int { return m.CostumeEnchantUpper }),
	equip(CostumeEnchantMiddle,
		func(m *domain.PresetModel) int { return m.CostumeEnchantMiddle }),
	equip(CostumeEnchantLower,
		func(m *domain.PresetModel) int { return m.CostumeEnchantLower }),
	equip(CostumeEnchantGarment,
		func(m *domain.PresetModel) int { return m.CostumeEnchantGarment }),
	equip(ShadowWeapon,
		func(m *domain.PresetModel) int { return m.ShadowWeapon },
		func(m *domain.PresetModel) int { return m.ShadowWeaponEnchant1 },
		func(m *domain.PresetModel) int { return m.ShadowWeaponEnchant2 },
		func(m *domain.PresetModel) int { return m.ShadowWeaponEnchant3 }),
	equip(ShadowShield,
		func(m *domain.PresetModel) int { return m.ShadowShield },
		func(m *domain.PresetModel) int { return m.ShadowShieldEnchant1 },
		func(m *domain.PresetModel) int { return m.ShadowShieldEnchant2 },
		func(m *domain.PresetModel) int { return m.ShadowShieldEnchant3 }),
	equip(ShadowArmor,
		func(m *domain.PresetModel) int { return m.ShadowArmor },
		func(m *domain.PresetModel) int { return m.ShadowArmorEnchant1 },
		func(m *domain.PresetModel) int { return m.ShadowArmorEnchant2 },
		func(m *domain.PresetModel) int { return m.ShadowArmorEnchant3 }),
	equip(ShadowBoot,
		func(m *domain.PresetModel) int { return m.ShadowBoot },
		func(m *domain.PresetModel) int { return m.ShadowBootEnchant1 },
		func(m *domain.PresetModel) int { return m.ShadowBootEnchant2 },
		func(m *domain.PresetModel) int { return m.ShadowBootEnchant3 }),
	equip(ShadowEarring,
		func(m *domain.PresetModel) int { return m.ShadowEarring },
		func(m *domain.PresetModel) int { return m.ShadowEarringEnchant1 },
		func(m *domain.PresetModel) int { return m.ShadowEarringEnchant2 },
		func(m *domain.PresetModel) int { return m.ShadowEarringEnchant3 }),
	equip(ShadowPendant,
		func(m *domain.PresetModel) int { return m.ShadowPendant },
		func(m *domain.PresetModel) int { return m.ShadowPendantEnchant1 },
		func(m *domain.PresetModel) int { return m.ShadowPendantEnchant2 },
		func(m *domain.PresetModel) int { return m.ShadowPendantEnchant3 }),
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		if _, dup := m[def.ID]; dup {
			panic(fmt.Sprintf("position: duplicate id %q", def.ID))
		}
		m[def.ID] = def
	}
	return m
}()

// Get returns the definition for id, or domain.ErrUnknownPosition.
func Get(id string) (Definition, error) {
	def, ok := byID[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", domain.ErrUnknownPosition, id)
	}
	return def, nil
}

// All returns every registered definition in declaration order.
func All() []Definition {
	return definitions
}

// IDs returns every registered position id in declaration order.
func IDs() []string {
	ids := make([]string, len(definitions))
	for i, def := range definitions {
		ids[i] = def.ID
	}
	return ids
}
