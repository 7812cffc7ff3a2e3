package api

import (
	"context"
	"sort"
	"sync"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/pkg/apperr"
)

// memUserStore is an in-memory service.UserStore double, swapped in behind
// the store interface so handler behavior can be exercised without Postgres.
type memUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{
		nextID: 1,
		users:  map[int]*model.User{},
	}
}

func (s *memUserStore) GetUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

func (s *memUserStore) GetUserById(ctx context.Context, userId int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userId]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *memUserStore) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.UserID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.UserID] = &copied
	return user, nil
}

func (s *memUserStore) UpdateUser(ctx context.Context, userId int, user *model.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[userId]
	if !ok {
		return 0, nil
	}
	existing.Name = user.Name
	existing.Email = user.Email
	return 1, nil
}

func (s *memUserStore) DeleteUser(ctx context.Context, userId int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userId]; !ok {
		return 0, nil
	}
	delete(s.users, userId)
	return 1, nil
}

// memActivityStore is an in-memory service.ActivityStore double.
type memActivityStore struct {
	mu         sync.Mutex
	nextID     int
	activities map[int]*model.Activity
}

func newMemActivityStore() *memActivityStore {
	return &memActivityStore{
		nextID:     1,
		activities: map[int]*model.Activity{},
	}
}

func (s *memActivityStore) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities := make([]*model.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		copied := *a
		activities = append(activities, &copied)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ActivityID < activities[j].ActivityID })
	return activities, nil
}

func (s *memActivityStore) GetActivitiesByUserId(ctx context.Context, userId int) ([]*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities := make([]*model.Activity, 0)
	for _, a := range s.activities {
		if a.UserID == userId {
			copied := *a
			activities = append(activities, &copied)
		}
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ActivityID < activities[j].ActivityID })
	return activities, nil
}

func (s *memActivityStore) GetActivityById(ctx context.Context, activityId int) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[activityId]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *memActivityStore) SaveActivity(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity.ActivityID = s.nextID
	s.nextID++
	copied := *activity
	s.activities[activity.ActivityID] = &copied
	return activity, nil
}

func (s *memActivityStore) UpdateActivityById(ctx context.Context, activityId int, activity *model.Activity) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.activities[activityId]
	if !ok {
		return 0, nil
	}
	existing.UserID = activity.UserID
	existing.Description = activity.Description
	existing.Duration = activity.Duration
	existing.Calories = activity.Calories
	existing.Started = activity.Started
	return 1, nil
}

func (s *memActivityStore) DeleteActivityById(ctx context.Context, activityId int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.activities[activityId]; !ok {
		return 0, nil
	}
	delete(s.activities, activityId)
	return 1, nil
}

func (s *memActivityStore) DeleteActivitiesByUserId(ctx context.Context, userId int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var affected int64
	for id, a := range s.activities {
		if a.UserID == userId {
			delete(s.activities, id)
			affected++
		}
	}
	return affected, nil
}
