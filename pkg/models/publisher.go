package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Publisher struct {
	bun.BaseModel `bun:"table:publishers,alias:p"`

	ID              int       `bun:",pk,nullzero" json:"id"`
	Name            string    `bun:",nullzero" json:"name"`
	EstablishedYear int       `bun:",nullzero" json:"established_year"`
	Books           []*Book   `bun:"rel:has-many,join:id=publisher_id" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
