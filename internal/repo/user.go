package repo

import (
	"context"

	"github.com/uptrace/bun"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/repo/selector"
)

type User struct {
	db  *bun.DB
	sel selector.S[model.User]
}

func NewUser(db *bun.DB) *User {
	return &User{
		db:  db,
		sel: selector.New[model.User](db),
	}
}

func (r *User) GetUsers(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := r.db.NewSelect().
		Model(&users).
		Order("user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *User) GetUserById(ctx context.Context, userId int) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userId)
	})
}

func (r *User) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("email = ?", email)
	})
}

// SaveUser inserts user and populates its UserID with the store-assigned id.
// Any id supplied by the caller is discarded.
func (r *User) SaveUser(ctx context.Context, user *model.User) (*model.User, error) {
	user.UserID = 0
	_, err := r.db.NewInsert().
		Model(user).
		Returning("user_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser overwrites name and email of the matching row only. A zero
// affected count signals that no row matched; no error is raised.
func (r *User) UpdateUser(ctx context.Context, userId int, user *model.User) (int64, error) {
	res, err := r.db.NewUpdate().
		Model(user).
		Column("name", "email").
		Where("user_id = ?", userId).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *User) DeleteUser(ctx context.Context, userId int) (int64, error) {
	res, err := r.db.NewDelete().
		Model((*model.User)(nil)).
		Where("user_id = ?", userId).
		Exec(ctx)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
