package authors

import (
	"context"
	"database/sql"
	"time"

	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateAuthorOptions struct {
	Name      string
	Birthdate time.Time
}

type Service struct {
	db    *bun.DB
	clock clock.Clock
}

func NewService(db *bun.DB, clk clock.Clock) *Service {
	return &Service{db: db, clock: clk}
}

// CreateAuthor creates a new author. The name must not be taken; the check
// and the insert run in one transaction.
func (svc *Service) CreateAuthor(ctx context.Context, opts CreateAuthorOptions) (*models.Author, error) {
	if opts.Birthdate.After(svc.clock.Now()) {
		return nil, errcodes.ValidationError("Birthdate cannot be in the future.")
	}

	now := svc.clock.Now()
	author := &models.Author{
		Name:      opts.Name,
		Birthdate: opts.Birthdate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.
			NewSelect().
			Model((*models.Author)(nil)).
			Where("a.name = ?", opts.Name).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errcodes.AlreadyExists("Author")
		}

		_, err = tx.
			NewInsert().
			Model(author).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, err
	}

	return author, nil
}

// RetrieveAuthor fetches an author by id.
func (svc *Service) RetrieveAuthor(ctx context.Context, id int) (*models.Author, error) {
	author := &models.Author{}

	err := svc.db.
		NewSelect().
		Model(author).
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

// GetBooks returns all books by the author, oldest row first. The author must
// exist.
func (svc *Service) GetBooks(ctx context.Context, authorID int) ([]*models.Book, error) {
	if _, err := svc.RetrieveAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	books := []*models.Book{}
	err := svc.db.
		NewSelect().
		Model(&books).
		Relation("Genres").
		Where("b.author_id = ?", authorID).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, book := range books {
		book.PopulateGenreIDs()
	}

	return books, nil
}
