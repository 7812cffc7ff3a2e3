package model

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"users"`

	UserID int    `bun:",pk,autoincrement" json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
