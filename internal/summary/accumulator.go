// Package summary folds published presets into usage statistics and
// shapes them into ranked, per-position output.
package summary

import (
	"strconv"
	"strings"

	"preset-tracker/internal/domain"
	"preset-tracker/internal/position"
)

// itemTracker accumulates usage of one item id within one
// (job, skill, position) context.
type itemTracker struct {
	users        map[string]struct{}
	presetCount  int
	enchants     map[string]int
	enchantTotal int
}

func newItemTracker() *itemTracker {
	return &itemTracker{
		users:    map[string]struct{}{},
		enchants: map[string]int{},
	}
}

// State is the intermediate result of one accumulation pass. It is
// mutable during Accumulate and read-only afterwards.
type State struct {
	jobUsers      map[int]map[string]struct{}
	jobSkillUsers map[int]map[string]map[string]struct{}
	presetCounts  map[int]map[string]int
	// jobID -> skill -> positionID -> itemID -> tracker
	trackers map[int]map[string]map[string]map[int]*itemTracker
}

func newState() *State {
	return &State{
		jobUsers:      map[int]map[string]struct{}{},
		jobSkillUsers: map[int]map[string]map[string]struct{}{},
		presetCounts:  map[int]map[string]int{},
		trackers:      map[int]map[string]map[string]map[int]*itemTracker{},
	}
}

// Accumulate folds rows into a fresh State. The fold is commutative per
// key: row order never changes the resulting counts. Rows without a
// model or without a selected skill are excluded entirely; such builds
// are incomplete and carry no statistical meaning.
func Accumulate(rows []domain.Preset) *State {
	st := newState()
	for i := range rows {
		st.add(&rows[i])
	}
	return st
}

func (st *State) add(row *domain.Preset) {
	model := row.Model
	if model == nil || model.SelectedAtkSkill == "" {
		return
	}
	jobID := row.ClassID
	skill := model.SelectedAtkSkill
	userID := row.UserID

	jobSet, ok := st.jobUsers[jobID]
	if !ok {
		jobSet = map[string]struct{}{}
		st.jobUsers[jobID] = jobSet
	}
	jobSet[userID] = struct{}{}

	skillUsers, ok := st.jobSkillUsers[jobID]
	if !ok {
		skillUsers = map[string]map[string]struct{}{}
		st.jobSkillUsers[jobID] = skillUsers
	}
	skillSet, ok := skillUsers[skill]
	if !ok {
		skillSet = map[string]struct{}{}
		skillUsers[skill] = skillSet
	}
	skillSet[userID] = struct{}{}

	presets, ok := st.presetCounts[jobID]
	if !ok {
		presets = map[string]int{}
		st.presetCounts[jobID] = presets
	}
	presets[skill]++

	for _, def := range position.All() {
		switch def.Kind {
		case position.KindEquip:
			itemID := def.Item(model)
			if itemID == 0 {
				continue
			}
			tracker := st.tracker(jobID, skill, def.ID, itemID)
			tracker.users[userID] = struct{}{}
			tracker.presetCount++
			if len(def.Enchants) > 0 {
				tracker.enchants[enchantKey(model, def.Enchants)]++
				tracker.enchantTotal++
			}
		case position.KindCard:
			// Card slots are independent: each populated card counts on
			// its own, with no enchant data.
			for _, read := range def.Cards {
				cardID := read(model)
				if cardID == 0 {
					continue
				}
				tracker := st.tracker(jobID, skill, def.ID, cardID)
				tracker.users[userID] = struct{}{}
				tracker.presetCount++
			}
		}
	}
}

func (st *State) tracker(jobID int, skill, positionID string, itemID int) *itemTracker {
	skills, ok := st.trackers[jobID]
	if !ok {
		skills = map[string]map[string]map[int]*itemTracker{}
		st.trackers[jobID] = skills
	}
	positions, ok := skills[skill]
	if !ok {
		positions = map[string]map[int]*itemTracker{}
		skills[skill] = positions
	}
	items, ok := positions[positionID]
	if !ok {
		items = map[int]*itemTracker{}
		positions[positionID] = items
	}
	tracker, ok := items[itemID]
	if !ok {
		tracker = newItemTracker()
		items[itemID] = tracker
	}
	return tracker
}

// enchantKey joins the enchant ids of one equip slot into the canonical
// combination key, empty slots included as 0 (e.g. "7-0-0").
func enchantKey(model *domain.PresetModel, enchants []position.Accessor) string {
	var sb strings.Builder
	for i, read := range enchants {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(read(model)))
	}
	return sb.String()
}
