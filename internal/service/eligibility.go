package service

import (
	"daily_quest_skill/internal/model"

	"github.com/google/uuid"
)

// EligibleQuests filters the catalog down to quests the user may receive:
// the qualifying age must not exceed the user's age and the quest id must
// not be in the completed set. Output order follows catalog order; callers
// pick from it at random.
func EligibleQuests(age int, quests []*model.Quest, completed map[uuid.UUID]bool) []*model.Quest {
	eligible := make([]*model.Quest, 0, len(quests))
	for _, quest := range quests {
		if quest.QualifiedAge > age {
			continue
		}
		if completed[quest.ID] {
			continue
		}
		eligible = append(eligible, quest)
	}
	return eligible
}
