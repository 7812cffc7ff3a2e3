package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/repo/selector"
)

type Activity struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{
		db:  db,
		sel: selector.New[model.Activity](db),
	}
}

func (r *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	activities := make([]*model.Activity, 0)
	err := r.db.NewSelect().
		Model(&activities).
		Order("activity_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

// GetActivitiesByUserId returns an empty slice when the user has no
// activities, whether or not the user exists. Existence of the user is the
// caller's responsibility.
func (r *Activity) GetActivitiesByUserId(ctx context.Context, userId int) ([]*model.Activity, error) {
	activities := make([]*model.Activity, 0)
	err := r.db.NewSelect().
		Model(&activities).
		Where("user_id = ?", userId).
		Order("activity_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *Activity) GetActivityById(ctx context.Context, activityId int) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("activity_id = ?", activityId)
	})
}

// SaveActivity inserts activity and populates its ActivityID with the
// store-assigned id. Any id supplied by the caller is discarded.
func (r *Activity) SaveActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	activity.ActivityID = 0
	_, err := r.db.NewInsert().
		Model(activity).
		Returning("activity_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *Activity) UpdateActivityById(ctx context.Context, activityId int, activity *model.Activity) (int64, error) {
	res, err := r.db.NewUpdate().
		Model(activity).
		Column("user_id", "description", "duration", "calories", "started").
		Where("activity_id = ?", activityId).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Activity) DeleteActivityById(ctx context.Context, activityId int) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("activity_id = ?", activityId).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// DeleteActivitiesByUserId removes all activities owned by userId in one
// statement. Deleting a user does not cascade here; callers invoke this
// explicitly when they want the user's activities gone.
func (r *Activity) DeleteActivitiesByUserId(ctx context.Context, userId int) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("user_id = ?", userId).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
