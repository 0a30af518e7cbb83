package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID          int        `bun:",pk,nullzero" json:"id"`
	Title       string     `bun:",nullzero" json:"title"`
	ISBN        int64      `bun:"isbn,nullzero" json:"isbn"`
	PublishDate time.Time  `bun:",nullzero" json:"publish_date"`
	AuthorID    int        `bun:",nullzero" json:"author_id"`
	Author      *Author    `bun:"rel:belongs-to,join:author_id=id" json:"-"`
	PublisherID int        `bun:",nullzero" json:"publisher_id"`
	Publisher   *Publisher `bun:"rel:belongs-to,join:publisher_id=id" json:"-"`
	IsAvailable bool       `json:"is_available"`
	Genres      []*Genre   `bun:"m2m:book_genres,join:Book=Genre" json:"-"`
	GenreIDs    []int      `bun:"-" json:"genre_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PopulateGenreIDs fills GenreIDs from the loaded Genres relation so that
// book responses always carry the genre id list.
func (b *Book) PopulateGenreIDs() {
	b.GenreIDs = make([]int, 0, len(b.Genres))
	for _, genre := range b.Genres {
		b.GenreIDs = append(b.GenreIDs, genre.ID)
	}
}

// BookGenre is the books<->genres join row. It has no identity of its own
// beyond the composite key.
type BookGenre struct {
	bun.BaseModel `bun:"table:book_genres,alias:bg"`

	BookID  int    `bun:",pk" json:"book_id"`
	Book    *Book  `bun:"rel:belongs-to,join:book_id=id" json:"-"`
	GenreID int    `bun:",pk" json:"genre_id"`
	Genre   *Genre `bun:"rel:belongs-to,join:genre_id=id" json:"-"`
}
