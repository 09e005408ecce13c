package service

import (
	"context"
	"testing"
	"time"

	"daily_quest_skill/internal/model"
	"daily_quest_skill/internal/repository"
	"daily_quest_skill/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	questChores = &model.Quest{
		ID:           uuid.MustParse("0d4f9342-6d37-44a8-9f0c-1d9aa6bd1a01"),
		Description:  "make your bed",
		QualifiedAge: 10,
		RewardPoints: 5,
	}
	questAdult = &model.Quest{
		ID:           uuid.MustParse("5d91e6b3-82f5-4a70-bd39-4af8d07c1c06"),
		Description:  "mow the lawn",
		QualifiedAge: 30,
		RewardPoints: 10,
	}
)

func testUser(userID string, age, points int) *model.User {
	now := time.Now()
	return &model.User{
		UserID:       userID,
		FirstName:    "Bob",
		BirthDate:    time.Date(now.Year()-age, time.June, 15, 0, 0, 0, 0, time.UTC),
		RewardPoints: points,
	}
}

func pendingActivity(userID, date string, questID uuid.UUID) *model.DailyActivity {
	return &model.DailyActivity{
		ID:      userID + "@" + date + "-09-00-00",
		UserID:  userID,
		Date:    date,
		QuestID: questID,
		IsDone:  false,
	}
}

func doneActivity(userID, date string, questID uuid.UUID) *model.DailyActivity {
	activity := pendingActivity(userID, date, questID)
	activity.IsDone = true
	return activity
}

func TestQuestService_GetDailyQuest(t *testing.T) {
	userID := "bob@amzn1.ask.account.test"
	today := time.Now().Format("2006-01-02")

	tests := []struct {
		name            string
		mockSetup       func(*mocks.MockQuestRepository)
		expectedOutcome model.DailyQuestOutcome
		expectedQuest   *model.Quest
		expectedError   error
		checkMockCalls  func(*testing.T, *mocks.MockQuestRepository)
	}{
		{
			name: "Assigns the only eligible quest",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{}, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(testUser(userID, 25, 0), nil)
				mockRepo.On("GetAllQuests", mock.Anything).
					Return([]*model.Quest{questChores, questAdult}, nil)
				mockRepo.On("CreateDailyActivity", mock.Anything, userID, today, questChores.ID).
					Return(pendingActivity(userID, today, questChores.ID), nil)
			},
			expectedOutcome: model.OutcomeAssigned,
			expectedQuest:   questChores,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNumberOfCalls(t, "CreateDailyActivity", 1)
			},
		},
		{
			name: "Reports the pending quest without creating another",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{pendingActivity(userID, today, questChores.ID)}, nil)
				mockRepo.On("GetQuestByID", mock.Anything, questChores.ID).
					Return(questChores, nil)
			},
			expectedOutcome: model.OutcomeAlreadyAssigned,
			expectedQuest:   questChores,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "CreateDailyActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Pending quest missing from catalog",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{pendingActivity(userID, today, questChores.ID)}, nil)
				mockRepo.On("GetQuestByID", mock.Anything, questChores.ID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrQuestNotFound,
		},
		{
			name: "Daily completion cap reached",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{
						doneActivity(userID, today, uuid.New()),
						doneActivity(userID, today, uuid.New()),
						doneActivity(userID, today, uuid.New()),
					}, nil)
			},
			expectedOutcome: model.OutcomeAllDone,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
				mockRepo.AssertNotCalled(t, "CreateDailyActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "User not found",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{}, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "No quest qualifies for a young user",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{}, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(testUser(userID, 5, 0), nil)
				mockRepo.On("GetAllQuests", mock.Anything).
					Return([]*model.Quest{questChores, questAdult}, nil)
			},
			expectedOutcome: model.OutcomeNoQuestToday,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "CreateDailyActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Quests completed today are excluded from the pick",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{doneActivity(userID, today, questAdult.ID)}, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(testUser(userID, 40, 0), nil)
				mockRepo.On("GetAllQuests", mock.Anything).
					Return([]*model.Quest{questChores, questAdult}, nil)
				mockRepo.On("CreateDailyActivity", mock.Anything, userID, today, questChores.ID).
					Return(pendingActivity(userID, today, questChores.ID), nil)
			},
			expectedOutcome: model.OutcomeAssigned,
			expectedQuest:   questChores,
		},
		{
			name: "More than one pending activity is refused",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{
						pendingActivity(userID, today, questChores.ID),
						pendingActivity(userID, today, questAdult.ID),
					}, nil)
			},
			expectedError: ErrActivityConflict,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "CreateDailyActivity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				mockRepo.AssertNotCalled(t, "GetQuestByID", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockQuestRepository{}
			tt.mockSetup(mockRepo)
			service := NewQuestService(mockRepo)

			result, err := service.GetDailyQuest(context.Background(), userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOutcome, result.Outcome)
				if tt.expectedQuest != nil {
					assert.Equal(t, tt.expectedQuest, result.Quest)
				}
			}

			if tt.checkMockCalls != nil {
				tt.checkMockCalls(t, mockRepo)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuestService_ClaimQuestComplete(t *testing.T) {
	userID := "bob@amzn1.ask.account.test"
	today := time.Now().Format("2006-01-02")
	pending := pendingActivity(userID, today, questChores.ID)

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockQuestRepository)
		expectedTotal  int
		expectedError  error
		checkMockCalls func(*testing.T, *mocks.MockQuestRepository)
	}{
		{
			name: "Claim credits the reward and completes the activity",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{pending}, nil)
				mockRepo.On("GetQuestByID", mock.Anything, questChores.ID).
					Return(questChores, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(testUser(userID, 25, 37), nil)
				mockRepo.On("UpdateUserPoints", mock.Anything, userID, 42).
					Return(nil)
				mockRepo.On("CompleteDailyActivity", mock.Anything, pending.ID).
					Return(nil)
			},
			expectedTotal: 42,
		},
		{
			name: "Nothing pending",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{doneActivity(userID, today, questChores.ID)}, nil)
			},
			expectedError: ErrNoPendingQuest,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "UpdateUserPoints", mock.Anything, mock.Anything, mock.Anything)
				mockRepo.AssertNotCalled(t, "CompleteDailyActivity", mock.Anything, mock.Anything)
			},
		},
		{
			name: "More than one pending activity is refused",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{
						pendingActivity(userID, today, questChores.ID),
						pendingActivity(userID, today, questAdult.ID),
					}, nil)
			},
			expectedError: ErrActivityConflict,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "UpdateUserPoints", mock.Anything, mock.Anything, mock.Anything)
				mockRepo.AssertNotCalled(t, "CompleteDailyActivity", mock.Anything, mock.Anything)
			},
		},
		{
			name: "Pending quest missing from catalog",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{pending}, nil)
				mockRepo.On("GetQuestByID", mock.Anything, questChores.ID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrQuestNotFound,
		},
		{
			name: "User missing",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{pending}, nil)
				mockRepo.On("GetQuestByID", mock.Anything, questChores.ID).
					Return(questChores, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "UpdateUserPoints", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "Points update failure leaves the activity pending",
			mockSetup: func(mockRepo *mocks.MockQuestRepository) {
				mockRepo.On("GetDailyActivities", mock.Anything, userID, today).
					Return([]*model.DailyActivity{pending}, nil)
				mockRepo.On("GetQuestByID", mock.Anything, questChores.ID).
					Return(questChores, nil)
				mockRepo.On("GetUserByID", mock.Anything, userID).
					Return(testUser(userID, 25, 37), nil)
				mockRepo.On("UpdateUserPoints", mock.Anything, userID, 42).
					Return(assert.AnError)
			},
			expectedError: assert.AnError,
			checkMockCalls: func(t *testing.T, mockRepo *mocks.MockQuestRepository) {
				mockRepo.AssertNotCalled(t, "CompleteDailyActivity", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockQuestRepository{}
			tt.mockSetup(mockRepo)
			service := NewQuestService(mockRepo)

			result, err := service.ClaimQuestComplete(context.Background(), userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, result.TotalPoints)
				assert.Equal(t, questChores, result.Quest)
			}

			if tt.checkMockCalls != nil {
				tt.checkMockCalls(t, mockRepo)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
