package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"daily_quest_skill/internal/model"
	"daily_quest_skill/internal/repository"

	"github.com/google/uuid"
)

const (
	// DailyCompletedActivitiesMax caps how many quests a user can finish
	// in one calendar day.
	DailyCompletedActivitiesMax = 3

	dateLayout = "2006-01-02"
)

type QuestService struct {
	repo QuestRepository
}

func NewQuestService(repo QuestRepository) *QuestService {
	return &QuestService{
		repo: repo,
	}
}

// GetDailyQuest reports the user's pending quest for today, or assigns a
// new one when nothing is pending and the daily completion cap has not been
// reached. Re-querying with a quest already pending returns the same quest
// and mutates nothing.
//
// The eligibility exclusion set is built from today's completed activities
// only, so a quest finished on a previous day can be offered again. Whether
// that is intended repeatable-quest design is an open product question; do
// not change it here without confirmation.
func (s *QuestService) GetDailyQuest(ctx context.Context, userID string) (*model.DailyQuestResult, error) {
	now := time.Now()
	date := now.Format(dateLayout)

	activities, err := s.repo.GetDailyActivities(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activities: %w", err)
	}

	pending := filterActivities(activities, false)
	if len(pending) > 1 {
		return nil, ErrActivityConflict
	}

	if len(pending) == 1 {
		quest, err := s.repo.GetQuestByID(ctx, pending[0].QuestID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrQuestNotFound
			}
			return nil, fmt.Errorf("failed to get quest: %w", err)
		}

		return &model.DailyQuestResult{
			Outcome: model.OutcomeAlreadyAssigned,
			Quest:   quest,
		}, nil
	}

	completed := filterActivities(activities, true)
	if len(completed) >= DailyCompletedActivitiesMax {
		return &model.DailyQuestResult{Outcome: model.OutcomeAllDone}, nil
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	quests, err := s.repo.GetAllQuests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quest catalog: %w", err)
	}

	completedIDs := make(map[uuid.UUID]bool, len(completed))
	for _, activity := range completed {
		completedIDs[activity.QuestID] = true
	}

	eligible := EligibleQuests(user.Age(now), quests, completedIDs)
	if len(eligible) == 0 {
		return &model.DailyQuestResult{Outcome: model.OutcomeNoQuestToday}, nil
	}

	quest := eligible[rand.IntN(len(eligible))]
	_, err = s.repo.CreateDailyActivity(ctx, userID, date, quest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily activity: %w", err)
	}

	return &model.DailyQuestResult{
		Outcome: model.OutcomeAssigned,
		Quest:   quest,
	}, nil
}

// ClaimQuestComplete resolves today's sole pending activity, credits the
// quest's reward to the user and marks the activity done. This is the only
// path that mutates reward points. A repeated claim finds nothing pending
// and returns ErrNoPendingQuest, so there is no double-credit path.
func (s *QuestService) ClaimQuestComplete(ctx context.Context, userID string) (*model.ClaimResult, error) {
	date := time.Now().Format(dateLayout)

	activities, err := s.repo.GetDailyActivities(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily activities: %w", err)
	}

	pending := filterActivities(activities, false)
	if len(pending) > 1 {
		return nil, ErrActivityConflict
	}
	if len(pending) == 0 {
		return nil, ErrNoPendingQuest
	}

	quest, err := s.repo.GetQuestByID(ctx, pending[0].QuestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	total := user.RewardPoints + quest.RewardPoints
	err = s.repo.UpdateUserPoints(ctx, userID, total)
	if err != nil {
		return nil, fmt.Errorf("failed to update user points: %w", err)
	}

	err = s.repo.CompleteDailyActivity(ctx, pending[0].ID)
	if err != nil {
		return nil, fmt.Errorf("failed to complete activity: %w", err)
	}

	return &model.ClaimResult{
		Quest:       quest,
		TotalPoints: total,
	}, nil
}

func filterActivities(activities []*model.DailyActivity, done bool) []*model.DailyActivity {
	var filtered []*model.DailyActivity
	for _, activity := range activities {
		if activity.IsDone == done {
			filtered = append(filtered, activity)
		}
	}
	return filtered
}
