package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	Name      string    `bun:",nullzero" json:"name"`
	Birthdate time.Time `bun:",nullzero" json:"birthdate"`
	Books     []*Book   `bun:"rel:has-many,join:id=author_id" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
