package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Activity references its owning User by UserID. The store does not enforce
// the reference: existence of the user is checked at the handler layer so
// that listing a missing user's activities stays distinguishable from an
// existing user's empty list.
type Activity struct {
	bun.BaseModel `bun:"activities"`

	ActivityID  int       `bun:",pk,autoincrement" json:"id"`
	UserID      int       `json:"userId"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Calories    int       `json:"calories"`
	Started     time.Time `json:"started"`
}
