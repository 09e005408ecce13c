package repository

import (
	"context"
	"database/sql"
	"errors"

	"daily_quest_skill/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type Quest struct {
	ID           uuid.UUID `db:"id"`
	Description  string    `db:"description"`
	QualifiedAge int       `db:"qualified_age"`
	RewardPoints int       `db:"reward_points"`
}

func (r *Repository) GetQuestByID(ctx context.Context, questID uuid.UUID) (*model.Quest, error) {
	var quest Quest
	query, args, err := squirrel.
		Select("id", "description", "qualified_age", "reward_points").
		From("quests").
		Where(squirrel.Eq{"id": questID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.GetContext(ctx, &quest, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.Quest{
		ID:           quest.ID,
		Description:  quest.Description,
		QualifiedAge: quest.QualifiedAge,
		RewardPoints: quest.RewardPoints,
	}, nil
}

// GetAllQuests returns the full catalog. The catalog is small and seeded
// externally, so no pagination.
func (r *Repository) GetAllQuests(ctx context.Context) ([]*model.Quest, error) {
	var quests []Quest
	query, args, err := squirrel.
		Select("id", "description", "qualified_age", "reward_points").
		From("quests").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &quests, query, args...)
	if err != nil {
		return nil, err
	}

	questList := make([]*model.Quest, len(quests))
	for i, quest := range quests {
		questList[i] = &model.Quest{
			ID:           quest.ID,
			Description:  quest.Description,
			QualifiedAge: quest.QualifiedAge,
			RewardPoints: quest.RewardPoints,
		}
	}

	return questList, nil
}
