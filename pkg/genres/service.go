package genres

import (
	"context"
	"database/sql"

	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateGenreOptions struct {
	Name string
}

type ListGenresOptions struct {
	Limit  int
	Offset int
}

type Service struct {
	db    *bun.DB
	clock clock.Clock
}

func NewService(db *bun.DB, clk clock.Clock) *Service {
	return &Service{db, clk}
}

// CreateGenre creates a new genre. The name must not be taken.
func (svc *Service) CreateGenre(ctx context.Context, opts CreateGenreOptions) (*models.Genre, error) {
	now := svc.clock.Now()
	genre := &models.Genre{
		Name:      opts.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.
			NewSelect().
			Model((*models.Genre)(nil)).
			Where("g.name = ?", opts.Name).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errcodes.AlreadyExists("Genre")
		}

		_, err = tx.
			NewInsert().
			Model(genre).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, err
	}

	return genre, nil
}

// ListGenres returns genres in insertion order.
func (svc *Service) ListGenres(ctx context.Context, opts ListGenresOptions) ([]*models.Genre, error) {
	genres := []*models.Genre{}

	err := svc.db.
		NewSelect().
		Model(&genres).
		Order("g.id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genres, nil
}
