package service

import (
	"context"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/pkg/apperr"
	"fittrack.dev/backend/internal/repo"
)

type Activity struct {
	ActivityRepo ActivityStore
}

func NewActivity(activityRepo *repo.Activity) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
	}
}

func (s *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	return s.ActivityRepo.GetActivities(ctx)
}

func (s *Activity) GetActivitiesByUserId(ctx context.Context, userId int) ([]*model.Activity, error) {
	return s.ActivityRepo.GetActivitiesByUserId(ctx, userId)
}

func (s *Activity) GetActivityById(ctx context.Context, activityId int) (*model.Activity, error) {
	return s.ActivityRepo.GetActivityById(ctx, activityId)
}

func (s *Activity) CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	return s.ActivityRepo.SaveActivity(ctx, activity)
}

func (s *Activity) UpdateActivityById(ctx context.Context, activityId int, activity *model.Activity) error {
	affected, err := s.ActivityRepo.UpdateActivityById(ctx, activityId, activity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound.Msg("activity not found with id %d", activityId)
	}
	return nil
}

func (s *Activity) DeleteActivityById(ctx context.Context, activityId int) error {
	affected, err := s.ActivityRepo.DeleteActivityById(ctx, activityId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound.Msg("activity not found with id %d", activityId)
	}
	return nil
}

// DeleteActivitiesByUserId removes every activity owned by userId. Returns
// apperr.ErrNotFound when the user had none, mirroring the affected-count
// convention of the single-row deletes.
func (s *Activity) DeleteActivitiesByUserId(ctx context.Context, userId int) error {
	affected, err := s.ActivityRepo.DeleteActivitiesByUserId(ctx, userId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound.Msg("no activities found for user with id %d", userId)
	}
	return nil
}
