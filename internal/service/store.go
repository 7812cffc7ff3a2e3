package service

import (
	"context"

	"fittrack.dev/backend/internal/model"
)

// UserStore is the capability surface the user service needs from its
// backing store. *repo.User is the production implementation; tests swap in
// an in-memory double.
type UserStore interface {
	GetUsers(ctx context.Context) ([]*model.User, error)
	GetUserById(ctx context.Context, userId int) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, userId int, user *model.User) (int64, error)
	DeleteUser(ctx context.Context, userId int) (int64, error)
}

// ActivityStore is the capability surface the activity service needs from
// its backing store.
type ActivityStore interface {
	GetActivities(ctx context.Context) ([]*model.Activity, error)
	GetActivitiesByUserId(ctx context.Context, userId int) ([]*model.Activity, error)
	GetActivityById(ctx context.Context, activityId int) (*model.Activity, error)
	SaveActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error)
	UpdateActivityById(ctx context.Context, activityId int, activity *model.Activity) (int64, error)
	DeleteActivityById(ctx context.Context, activityId int) (int64, error)
	DeleteActivitiesByUserId(ctx context.Context, userId int) (int64, error)
}
