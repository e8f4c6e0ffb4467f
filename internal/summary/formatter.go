package summary

import (
	"sort"

	"preset-tracker/internal/domain"
	"preset-tracker/internal/position"
)

// Format shapes an accumulation State into the served summary. Pure:
// the same State always yields the same output. Every registered
// position is present for every observed (job, skill) pair, empty
// lists included, so consumers can iterate the full slot set without
// presence checks.
func Format(st *State) *domain.AggregatedSummary {
	out := domain.EmptySummary()

	for jobID, users := range st.jobUsers {
		out.JobUsage[jobID] = len(users)
	}

	for jobID, skills := range st.jobSkillUsers {
		usage := make(map[string]int, len(skills))
		for skill, users := range skills {
			usage[skill] = len(users)
		}
		out.JobSkillUsage[jobID] = usage
	}

	for jobID, skills := range st.presetCounts {
		counts := make(map[string]int, len(skills))
		for skill, n := range skills {
			counts[skill] = n
		}
		out.JobSkillPresets[jobID] = counts
	}

	// Key the rankings off the observed (job, skill) pairs, not the
	// trackers: an admitted build with no equipped items still owns a
	// full position map of empty lists.
	positionIDs := position.IDs()
	for jobID, skills := range st.jobSkillUsers {
		jobRankings := make(map[string]map[string][]domain.ItemRanking, len(skills))
		for skill := range skills {
			positions := st.trackers[jobID][skill]
			skillRankings := make(map[string][]domain.ItemRanking, len(positionIDs))
			for _, positionID := range positionIDs {
				skillRankings[positionID] = rank(positions[positionID])
			}
			jobRankings[skill] = skillRankings
		}
		out.Rankings[jobID] = jobRankings
	}

	return out
}

// rank converts one position's trackers into the sorted ranking list.
// Order: distinct-user count descending, then item id ascending. The
// tie-break keeps output deterministic regardless of map iteration.
func rank(items map[int]*itemTracker) []domain.ItemRanking {
	rankings := make([]domain.ItemRanking, 0, len(items))
	for itemID, tracker := range items {
		enchants := make(map[string]int, len(tracker.enchants))
		for key, n := range tracker.enchants {
			enchants[key] = n
		}
		rankings = append(rankings, domain.ItemRanking{
			ItemID:       itemID,
			TotalAccount: len(tracker.users),
			TotalPreset:  tracker.presetCount,
			TotalEnchant: tracker.enchantTotal,
			Enchants:     enchants,
		})
	}
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].TotalAccount != rankings[j].TotalAccount {
			return rankings[i].TotalAccount > rankings[j].TotalAccount
		}
		return rankings[i].ItemID < rankings[j].ItemID
	})
	return rankings
}
