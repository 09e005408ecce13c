package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"daily_quest_skill/internal/alexa"
	"daily_quest_skill/internal/model"
	"daily_quest_skill/internal/service"
	"daily_quest_skill/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	IntentAskDailyQuest      = "AskDailyQuest"
	IntentClaimQuestComplete = "ClaimQuestComplete"
	IntentQueryRewardPoints  = "QueryRewardPoints"
)

// DefaultErrorMessage is the single fallback utterance for every failure.
// The voice channel only carries text, so missing data, invariant
// violations and unknown intents all collapse into it.
const DefaultErrorMessage = "mister bob is out of town today. please try again later."

type skillRoutes struct {
	qs service.QuestServiceI
	us service.UserServiceI
}

func NewSkillRoutes(handler *gin.RouterGroup, qs service.QuestServiceI, us service.UserServiceI) {
	r := &skillRoutes{qs: qs, us: us}
	h := handler.Group("/skill")
	{
		h.POST("", r.HandleSkillRequest)
	}
}

// userID scopes identity per first name per platform account, so one
// account can hold several named profiles.
func userID(firstName, requesterID string) string {
	return strings.ToLower(firstName) + "@" + requesterID
}

func (r *skillRoutes) HandleSkillRequest(c *gin.Context) {
	log := logger.Logger()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error("failed to read request body", zap.Error(err))
		r.respond(c, "Error", DefaultErrorMessage)
		return
	}

	var envelope alexa.RequestEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error("failed to parse request envelope", zap.Error(err))
		r.respond(c, "Error", DefaultErrorMessage)
		return
	}

	intentName := envelope.Request.Intent.Name
	firstName := envelope.SlotValue("firstname")
	id := userID(firstName, envelope.Context.System.User.UserID)

	ctx := c.Request.Context()

	switch intentName {
	case IntentAskDailyQuest:
		r.respond(c, "Quest", r.dailyQuestSpeech(c, firstName, id))
	case IntentClaimQuestComplete:
		r.respond(c, "QuestComplete", r.claimSpeech(c, firstName, id))
	case IntentQueryRewardPoints:
		points, err := r.us.GetRewardPoints(ctx, id)
		if err != nil {
			log.Error("failed to query reward points", zap.Error(err), zap.String("user_id", id))
			r.respond(c, "RewardPointsQuery", DefaultErrorMessage)
			return
		}
		r.respond(c, "RewardPointsQuery", fmt.Sprintf("%s has %d points in total.", firstName, points))
	default:
		log.Warn("unrecognized intent", zap.String("intent", intentName))
		r.respond(c, "Error", DefaultErrorMessage)
	}
}

func (r *skillRoutes) dailyQuestSpeech(c *gin.Context, firstName, id string) string {
	log := logger.Logger()

	result, err := r.qs.GetDailyQuest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrActivityConflict) {
			log.Error("multiple pending activities for one day",
				zap.String("user_id", id))
		} else {
			log.Error("failed to get daily quest", zap.Error(err), zap.String("user_id", id))
		}
		return DefaultErrorMessage
	}

	switch result.Outcome {
	case model.OutcomeAssigned, model.OutcomeAlreadyAssigned:
		return fmt.Sprintf("the quest for %s is %s. %s will get %d points if complete it today.",
			firstName, result.Quest.Description, firstName, result.Quest.RewardPoints)
	case model.OutcomeAllDone:
		return fmt.Sprintf("%s has done all the quests today. good job. please try again tomorrow.", firstName)
	case model.OutcomeNoQuestToday:
		return fmt.Sprintf("there is no quest for %s today. please try again tomorrow.", firstName)
	default:
		log.Error("unexpected daily quest outcome", zap.Int("outcome", int(result.Outcome)))
		return DefaultErrorMessage
	}
}

func (r *skillRoutes) claimSpeech(c *gin.Context, firstName, id string) string {
	log := logger.Logger()

	result, err := r.qs.ClaimQuestComplete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPendingQuest):
			return fmt.Sprintf("%s has no pending quest today.", firstName)
		case errors.Is(err, service.ErrActivityConflict):
			log.Error("multiple pending activities for one day",
				zap.String("user_id", id))
		default:
			log.Error("failed to claim quest", zap.Error(err), zap.String("user_id", id))
		}
		return DefaultErrorMessage
	}

	return fmt.Sprintf("good job. %s has completed the quest %s and earned %d points. %s now has %d points in total.",
		firstName, result.Quest.Description, result.Quest.RewardPoints, firstName, result.TotalPoints)
}

// respond always answers HTTP 200 with a session-ending envelope. Platform
// errors are spoken, never surfaced as protocol failures.
func (r *skillRoutes) respond(c *gin.Context, title, speech string) {
	response := alexa.NewResponse(title, speech, nil, true)

	body, err := json.Marshal(response)
	if err != nil {
		logger.Logger().Error("failed to marshal response envelope", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
