package model

import "github.com/google/uuid"

// DailyActivity binds a user to a quest for one calendar day. The id embeds
// the creation timestamp, so activities for the same user and date stay
// distinguishable.
type DailyActivity struct {
	ID      string
	UserID  string
	Date    string
	QuestID uuid.UUID
	IsDone  bool
}

type DailyQuestOutcome int

const (
	// OutcomeAssigned means a new activity was created for a freshly
	// picked quest.
	OutcomeAssigned DailyQuestOutcome = iota
	// OutcomeAlreadyAssigned means the pending quest was re-reported
	// without any mutation.
	OutcomeAlreadyAssigned
	// OutcomeAllDone means the user hit the daily completion cap.
	OutcomeAllDone
	// OutcomeNoQuestToday means no catalog quest qualified.
	OutcomeNoQuestToday
)

type DailyQuestResult struct {
	Outcome DailyQuestOutcome
	Quest   *Quest
}

type ClaimResult struct {
	Quest       *Quest
	TotalPoints int
}
