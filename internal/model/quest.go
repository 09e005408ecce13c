package model

import "github.com/google/uuid"

// Quest is an immutable catalog entry. Quests are seeded externally and
// never created or mutated by the skill.
type Quest struct {
	ID           uuid.UUID
	Description  string
	QualifiedAge int
	RewardPoints int
}
