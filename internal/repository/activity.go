package repository

import (
	"context"
	"fmt"
	"time"

	"daily_quest_skill/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type DailyActivity struct {
	ID      string    `db:"id"`
	UserID  string    `db:"user_id"`
	Date    string    `db:"date"`
	QuestID uuid.UUID `db:"quest_id"`
	IsDone  bool      `db:"is_done"`
}

// activityID embeds the creation instant so repeated assignments for one
// user and date remain distinguishable rows.
func activityID(userID string, now time.Time) string {
	return fmt.Sprintf("%s@%s", userID, now.Format("2006-01-02-15-04-05"))
}

func (r *Repository) CreateDailyActivity(ctx context.Context, userID, date string, questID uuid.UUID) (*model.DailyActivity, error) {
	activity := &model.DailyActivity{
		ID:      activityID(userID, time.Now()),
		UserID:  userID,
		Date:    date,
		QuestID: questID,
		IsDone:  false,
	}

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Insert("daily_activities").
			SetMap(map[string]interface{}{
				"id":       activity.ID,
				"user_id":  activity.UserID,
				"date":     activity.Date,
				"quest_id": activity.QuestID,
				"is_done":  activity.IsDone,
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build activity insert query: %w", err)
		}

		_, err = tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to insert activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *Repository) CompleteDailyActivity(ctx context.Context, activityID string) error {
	query, args, err := squirrel.
		Update("daily_activities").
		Set("is_done", true).
		Where(squirrel.Eq{"id": activityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) GetDailyActivities(ctx context.Context, userID, date string) ([]*model.DailyActivity, error) {
	var activities []DailyActivity
	query, args, err := squirrel.
		Select("id", "user_id", "date", "quest_id", "is_done").
		From("daily_activities").
		Where(squirrel.Eq{"user_id": userID, "date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &activities, query, args...)
	if err != nil {
		return nil, err
	}

	activityList := make([]*model.DailyActivity, len(activities))
	for i, activity := range activities {
		activityList[i] = &model.DailyActivity{
			ID:      activity.ID,
			UserID:  activity.UserID,
			Date:    activity.Date,
			QuestID: activity.QuestID,
			IsDone:  activity.IsDone,
		}
	}

	return activityList, nil
}
