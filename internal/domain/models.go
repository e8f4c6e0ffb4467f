package domain

import (
	"time"
)

// Preset is one saved character build. Model is nil when the stored
// model column could not be decoded.
type Preset struct {
	ID          string
	UserID      string
	Label       string
	ClassID     int
	Model       *PresetModel
	IsPublished bool
	PublishName string
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PresetModel is the flat slot layout of a build as published by the
// calculator. Item ids are 0 when the slot is empty.
type PresetModel struct {
	Class            int    `json:"class"`
	SelectedAtkSkill string `json:"selectedAtkSkill"`

	Weapon         int `json:"weapon"`
	WeaponEnchant1 int `json:"weaponEnchant1"`
	WeaponEnchant2 int `json:"weaponEnchant2"`
	WeaponEnchant3 int `json:"weaponEnchant3"`
	WeaponCard1    int `json:"weaponCard1"`
	WeaponCard2    int `json:"weaponCard2"`
	WeaponCard3    int `json:"weaponCard3"`
	WeaponCard4    int `json:"weaponCard4"`

	LeftWeapon         int `json:"leftWeapon"`
	LeftWeaponEnchant1 int `json:"leftWeaponEnchant1"`
	LeftWeaponEnchant2 int `json:"leftWeaponEnchant2"`
	LeftWeaponEnchant3 int `json:"leftWeaponEnchant3"`
	LeftWeaponCard1    int `json:"leftWeaponCard1"`
	LeftWeaponCard2    int `json:"leftWeaponCard2"`
	LeftWeaponCard3    int `json:"leftWeaponCard3"`
	LeftWeaponCard4    int `json:"leftWeaponCard4"`

	Shield         int `json:"shield"`
	ShieldEnchant1 int `json:"shieldEnchant1"`
	ShieldEnchant2 int `json:"shieldEnchant2"`
	ShieldEnchant3 int `json:"shieldEnchant3"`
	ShieldCard     int `json:"shieldCard"`

	HeadUpper         int `json:"headUpper"`
	HeadUpperEnchant1 int `json:"headUpperEnchant1"`
	HeadUpperEnchant2 int `json:"headUpperEnchant2"`
	HeadUpperEnchant3 int `json:"headUpperEnchant3"`
	HeadUpperCard     int `json:"headUpperCard"`

	HeadMiddle         int `json:"headMiddle"`
	HeadMiddleEnchant1 int `json:"headMiddleEnchant1"`
	HeadMiddleEnchant2 int `json:"headMiddleEnchant2"`
	HeadMiddleEnchant3 int `json:"headMiddleEnchant3"`
	HeadMiddleCard     int `json:"headMiddleCard"`

	HeadLower         int `json:"headLower"`
	HeadLowerEnchant1 int `json:"headLowerEnchant1"`
	HeadLowerEnchant2 int `json:"headLowerEnchant2"`
	HeadLowerEnchant3 int `json:"headLowerEnchant3"`

	Armor         int `json:"armor"`
	ArmorEnchant1 int `json:"armorEnchant1"`
	ArmorEnchant2 int `json:"armorEnchant2"`
	ArmorEnchant3 int `json:"armorEnchant3"`
	ArmorCard     int `json:"armorCard"`

	Garment         int `json:"garment"`
	GarmentEnchant1 int `json:"garmentEnchant1"`
	GarmentEnchant2 int `json:"garmentEnchant2"`
	GarmentEnchant3 int `json:"garmentEnchant3"`
	GarmentCard     int `json:"garmentCard"`

	Boot         int `json:"boot"`
	BootEnchant1 int `json:"bootEnchant1"`
	BootEnchant2 int `json:"bootEnchant2"`
	BootEnchant3 int `json:"bootEnchant3"`
	BootCard     int `json:"bootCard"`

	AccLeft         int `json:"accLeft"`
	AccLeftEnchant1 int `json:"accLeftEnchant1"`
	AccLeftEnchant2 int `json:"accLeftEnchant2"`
	AccLeftEnchant3 int `json:"accLeftEnchant3"`
	AccLeftCard     int `json:"accLeftCard"`

	AccRight         int `json:"accRight"`
	AccRightEnchant1 int `json:"accRightEnchant1"`
	AccRightEnchant2 int `json:"accRightEnchant2"`
	AccRightEnchant3 int `json:"accRightEnchant3"`
	AccRightCard     int `json:"accRightCard"`

	CostumeEnchantUpper   int `json:"costumeEnchantUpper"`
	CostumeEnchantMiddle  int `json:"costumeEnchantMiddle"`
	CostumeEnchantLower   int `json:"costumeEnchantLower"`
	CostumeEnchantGarment int `json:"costumeEnchantGarment"`

	ShadowWeapon         int `json:"shadowWeapon"`
	ShadowWeaponEnchant1 int `json:"shadowWeaponEnchant1"`
	ShadowWeaponEnchant2 int `json:"shadowWeaponEnchant2"`
	ShadowWeaponEnchant3 int `json:"shadowWeaponEnchant3"`

	ShadowShield         int `json:"shadowShield"`
	ShadowShieldEnchant1 int `json:"shadowShieldEnchant1"`
	ShadowShieldEnchant2 int `json:"shadowShieldEnchant2"`
	ShadowShieldEnchant3 int `json:"shadowShieldEnchant3"`

	ShadowArmor         int `json:"shadowArmor"`
	ShadowArmorEnchant1 int `json:"shadowArmorEnchant1"`
	ShadowArmorEnchant2 int `json:"shadowArmorEnchant2"`
	ShadowArmorEnchant3 int `json:"shadowArmorEnchant3"`

	ShadowBoot         int `json:"shadowBoot"`
	ShadowBootEnchant1 int `json:"shadowBootEnchant1"`
	ShadowBootEnchant2 int `json:"shadowBootEnchant2"`
	ShadowBootEnchant3 int `json:"shadowBootEnchant3"`

	ShadowEarring         int `json:"shadowEarring"`
	ShadowEarringEnchant1 int `json:"shadowEarringEnchant1"`
	ShadowEarringEnchant2 int `json:"shadowEarringEnchant2"`
	ShadowEarringEnchant3 int `json:"shadowEarringEnchant3"`

	ShadowPendant         int `json:"shadowPendant"`
	ShadowPendantEnchant1 int `json:"shadowPendantEnchant1"`
	ShadowPendantEnchant2 int `json:"shadowPendantEnchant2"`
	ShadowPendantEnchant3 int `json:"shadowPendantEnchant3"`
}

// ItemRanking is one entry of a position's ranking list. Enchants maps
// the canonical "a-b-c" enchant combination key to its occurrence count.
type ItemRanking struct {
	ItemID       int            `json:"itemId"`
	TotalAccount int            `json:"totalAccount"`
	TotalPreset  int            `json:"totalPreset"`
	TotalEnchant int            `json:"totalEnchant"`
	Enchants     map[string]int `json:"enchants"`
}

// AggregatedSummary is one immutable aggregation snapshot. Maps are
// never nil; consumers read the snapshot concurrently without locking.
type AggregatedSummary struct {
	JobUsage        map[int]int                                 `json:"jobUsage"`
	JobSkillUsage   map[int]map[string]int                      `json:"jobSkillUsage"`
	JobSkillPresets map[int]map[string]int                      `json:"jobSkillPresets"`
	Rankings        map[int]map[string]map[string][]ItemRanking `json:"rankings"`
}

// EmptySummary returns a summary with all maps allocated and empty.
func EmptySummary() *AggregatedSummary {
	return &AggregatedSummary{
		JobUsage:        map[int]int{},
		JobSkillUsage:   map[int]map[string]int{},
		JobSkillPresets: map[int]map[string]int{},
		Rankings:        map[int]map[string]map[string][]ItemRanking{},
	}
}
