package pipeline

import "comedy-houston/internal/models"

// Deduplicate collapses events sharing an id into one record each.
// First-seen insertion order is preserved; a later duplicate replaces
// the stored record only when its completeness score is strictly
// higher. Replacement is whole-record, never a field merge.
func Deduplicate(events []models.Event) []models.Event {
	type slot struct {
		index int
		score int
	}

	seen := make(map[string]slot, len(events))
	var out []models.Event

	for _, ev := range events {
		score := ev.CompletenessScore()
		if s, ok := seen[ev.ID]; ok {
			if score > s.score {
				out[s.index] = ev
				seen[ev.ID] = slot{index: s.index, score: score}
			}
			continue
		}
		seen[ev.ID] = slot{index: len(out), score: score}
		out = append(out, ev)
	}

	return out
}
