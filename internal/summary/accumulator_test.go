package summary

import (
	"reflect"
	"testing"

	"preset-tracker/internal/domain"
	"preset-tracker/internal/position"
)

func buildModel(skill string, mutate func(*domain.PresetModel)) *domain.PresetModel {
	m := &domain.PresetModel{SelectedAtkSkill: skill}
	if mutate != nil {
		mutate(m)
	}
	return m
}

func preset(userID string, classID int, model *domain.PresetModel) domain.Preset {
	return domain.Preset{UserID: userID, ClassID: classID, Model: model}
}

func TestAccumulateSameItemTwoUsers(t *testing.T) {
	rows := []domain.Preset{
		preset("user-a", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Weapon = 501 })),
		preset("user-b", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Weapon = 501 })),
	}

	sum := Format(Accumulate(rows))

	rankings := sum.Rankings[10]["Storm Gust"][position.Weapon]
	if len(rankings) != 1 {
		t.Fatalf("want 1 ranking entry, got %d", len(rankings))
	}
	entry := rankings[0]
	if entry.ItemID != 501 || entry.TotalAccount != 2 || entry.TotalPreset != 2 {
		t.Errorf("got entry %+v, want itemId=501 totalAccount=2 totalPreset=2", entry)
	}
	if sum.JobUsage[10] != 2 {
		t.Errorf("jobUsage[10] = %d, want 2", sum.JobUsage[10])
	}
	if sum.JobSkillUsage[10]["Storm Gust"] != 2 {
		t.Errorf("jobSkillUsage = %d, want 2", sum.JobSkillUsage[10]["Storm Gust"])
	}
	if sum.JobSkillPresets[10]["Storm Gust"] != 2 {
		t.Errorf("jobSkillPresets = %d, want 2", sum.JobSkillPresets[10]["Storm Gust"])
	}
}

func TestAccumulateSkipsRowsWithoutSkill(t *testing.T) {
	rows := []domain.Preset{
		preset("user-a", 10, buildModel("", func(m *domain.PresetModel) { m.Weapon = 501 })),
		preset("user-b", 11, nil),
	}

	sum := Format(Accumulate(rows))

	if len(sum.JobUsage) != 0 || len(sum.JobSkillUsage) != 0 ||
		len(sum.JobSkillPresets) != 0 || len(sum.Rankings) != 0 {
		t.Errorf("skipped rows leaked into summary: %+v", sum)
	}
}

func TestAccumulateEnchantCombinations(t *testing.T) {
	withEnchants := func(e1, e2 int) *domain.PresetModel {
		return buildModel("Arrow Storm", func(m *domain.PresetModel) {
			m.Weapon = 601
			m.WeaponEnchant1 = e1
			m.WeaponEnchant2 = e2
		})
	}
	rows := []domain.Preset{
		preset("user-a", 20, withEnchants(7, 0)),
		preset("user-b", 20, withEnchants(7, 0)),
		preset("user-c", 20, withEnchants(7, 8)),
	}

	sum := Format(Accumulate(rows))

	entry := sum.Rankings[20]["Arrow Storm"][position.Weapon][0]
	want := map[string]int{"7-0-0": 2, "7-8-0": 1}
	if !reflect.DeepEqual(entry.Enchants, want) {
		t.Errorf("enchants = %v, want %v", entry.Enchants, want)
	}
	if entry.TotalEnchant != 3 {
		t.Errorf("totalEnchant = %d, want 3", entry.TotalEnchant)
	}
}

func TestAccumulateCardFieldsAreIndependent(t *testing.T) {
	rows := []domain.Preset{
		preset("user-a", 30, buildModel("Ignition Break", func(m *domain.PresetModel) {
			m.WeaponCard1 = 100
			m.WeaponCard3 = 200
		})),
	}

	sum := Format(Accumulate(rows))

	rankings := sum.Rankings[30]["Ignition Break"][position.WeaponCard]
	if len(rankings) != 2 {
		t.Fatalf("want 2 card trackers, got %d", len(rankings))
	}
	for _, entry := range rankings {
		if entry.TotalAccount != 1 || entry.TotalPreset != 1 {
			t.Errorf("card entry %+v: want totalAccount=1 totalPreset=1", entry)
		}
		if entry.TotalEnchant != 0 || len(entry.Enchants) != 0 {
			t.Errorf("card entry %+v carries enchant data", entry)
		}
	}
	if rankings[0].ItemID != 100 || rankings[1].ItemID != 200 {
		t.Errorf("card ids = %d, %d; want 100, 200", rankings[0].ItemID, rankings[1].ItemID)
	}
}

func TestAccumulateEmptyInput(t *testing.T) {
	sum := Format(Accumulate(nil))

	if sum == nil {
		t.Fatal("empty input must yield a summary, not nil")
	}
	if len(sum.JobUsage) != 0 || len(sum.JobSkillUsage) != 0 ||
		len(sum.JobSkillPresets) != 0 || len(sum.Rankings) != 0 {
		t.Errorf("empty input produced non-empty summary: %+v", sum)
	}
}

func TestAccumulatePresetCountCanExceedDistinctUsers(t *testing.T) {
	rows := []domain.Preset{
		preset("user-a", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Armor = 2301 })),
		preset("user-a", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Armor = 2301 })),
		preset("user-a", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Armor = 2301 })),
	}

	sum := Format(Accumulate(rows))

	entry := sum.Rankings[10]["Storm Gust"][position.Armor][0]
	if entry.TotalAccount != 1 || entry.TotalPreset != 3 {
		t.Errorf("got totalAccount=%d totalPreset=%d, want 1 and 3", entry.TotalAccount, entry.TotalPreset)
	}
	if sum.JobUsage[10] != 1 {
		t.Errorf("jobUsage = %d, want 1", sum.JobUsage[10])
	}
	if sum.JobSkillPresets[10]["Storm Gust"] != 3 {
		t.Errorf("jobSkillPresets = %d, want 3", sum.JobSkillPresets[10]["Storm Gust"])
	}
}

func TestAccumulateOrderIndependent(t *testing.T) {
	rows := []domain.Preset{
		preset("user-a", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Weapon = 501; m.WeaponEnchant1 = 7 })),
		preset("user-b", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Weapon = 502; m.ShieldCard = 44 })),
		preset("user-c", 10, buildModel("Jupitel Thunder", func(m *domain.PresetModel) { m.Weapon = 501 })),
		preset("user-a", 25, buildModel("Cart Cannon", func(m *domain.PresetModel) { m.Garment = 881; m.GarmentCard = 12 })),
		preset("user-d", 25, buildModel("Cart Cannon", func(m *domain.PresetModel) { m.Garment = 881 })),
	}

	forward := Format(Accumulate(rows))

	reversed := make([]domain.Preset, len(rows))
	for i := range rows {
		reversed[len(rows)-1-i] = rows[i]
	}
	backward := Format(Accumulate(reversed))

	if !reflect.DeepEqual(forward, backward) {
		t.Errorf("accumulation is order dependent:\nforward:  %+v\nbackward: %+v", forward, backward)
	}
}

func TestAccumulateIdempotent(t *testing.T) {
	rows := []domain.Preset{
		preset("user-a", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.Weapon = 501; m.WeaponEnchant2 = 9 })),
		preset("user-b", 10, buildModel("Storm Gust", func(m *domain.PresetModel) { m.WeaponCard2 = 77 })),
	}

	st := Accumulate(rows)
	first := Format(st)
	second := Format(st)

	if !reflect.DeepEqual(first, second) {
		t.Error("formatting the same state twice produced different output")
	}
	if !reflect.DeepEqual(first, Format(Accumulate(rows))) {
		t.Error("re-accumulating the same rows produced different output")
	}
}
