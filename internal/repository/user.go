package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"daily_quest_skill/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type User struct {
	UserID       string    `db:"user_id"`
	FirstName    string    `db:"first_name"`
	BirthDate    time.Time `db:"birth_date"`
	RewardPoints int       `db:"reward_points"`
}

func (r *Repository) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user User
	query, args, err := squirrel.
		Select("user_id", "first_name", "birth_date", "reward_points").
		From("users").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.User{
		UserID:       user.UserID,
		FirstName:    user.FirstName,
		BirthDate:    user.BirthDate,
		RewardPoints: user.RewardPoints,
	}, nil
}

// UpdateUserPoints sets the user's total to points. The claim flow computes
// the new total; this mutation does not add.
func (r *Repository) UpdateUserPoints(ctx context.Context, userID string, points int) error {
	return r.Transaction(ctx, func(tx *sqlx.Tx) error {
		updateQuery, updateArgs, err := squirrel.
			Update("users").
			Set("reward_points", points).
			Where(squirrel.Eq{"user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
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
	})
}
