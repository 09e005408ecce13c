package service

import (
	"context"
	"errors"

	"daily_quest_skill/internal/model"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrQuestNotFound  = errors.New("quest not found")
	ErrNoPendingQuest = errors.New("no pending quest today")

	// ErrActivityConflict reports more than one pending activity for a
	// user and date. Normal flow never produces this state; it means
	// concurrent assigns raced or the data was corrupted, and it is
	// surfaced rather than repaired.
	ErrActivityConflict = errors.New("multiple pending activities for the same day")
)

type Service struct {
	*UserService
	*QuestService
}

func NewService(userService *UserService, questService *QuestService) *Service {
	return &Service{
		UserService:  userService,
		QuestService: questService,
	}
}

type QuestServiceI interface {
	GetDailyQuest(ctx context.Context, userID string) (*model.DailyQuestResult, error)
	ClaimQuestComplete(ctx context.Context, userID string) (*model.ClaimResult, error)
}

type UserServiceI interface {
	GetRewardPoints(ctx context.Context, userID string) (int, error)
}

type QuestRepository interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	UpdateUserPoints(ctx context.Context, userID string, points int) error
	GetQuestByID(ctx context.Context, questID uuid.UUID) (*model.Quest, error)
	GetAllQuests(ctx context.Context) ([]*model.Quest, error)
	CreateDailyActivity(ctx context.Context, userID, date string, questID uuid.UUID) (*model.DailyActivity, error)
	CompleteDailyActivity(ctx context.Context, activityID string) error
	GetDailyActivities(ctx context.Context, userID, date string) ([]*model.DailyActivity, error)
}

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
}
