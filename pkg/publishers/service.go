package publishers

import (
	"context"
	"database/sql"

	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreatePublisherOptions struct {
	Name            string
	EstablishedYear int
}

type ListPublishersOptions struct {
	Limit  int
	Offset int
}

type Service struct {
	db    *bun.DB
	clock clock.Clock
}

func NewService(db *bun.DB, clk clock.Clock) *Service {
	return &Service{db: db, clock: clk}
}

// CreatePublisher creates a new publisher. The name must not be taken and the
// established year cannot be later than the current year.
func (svc *Service) CreatePublisher(ctx context.Context, opts CreatePublisherOptions) (*models.Publisher, error) {
	now := svc.clock.Now()
	if opts.EstablishedYear > now.Year() {
		return nil, errcodes.ValidationError("Established year cannot be in the future.")
	}

	publisher := &models.Publisher{
		Name:            opts.Name,
		EstablishedYear: opts.EstablishedYear,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.
			NewSelect().
			Model((*models.Publisher)(nil)).
			Where("p.name = ?", opts.Name).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errcodes.AlreadyExists("Publisher")
		}

		_, err = tx.
			NewInsert().
			Model(publisher).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, err
	}

	return publisher, nil
}

// RetrievePublisher fetches a publisher by id.
func (svc *Service) RetrievePublisher(ctx context.Context, id int) (*models.Publisher, error) {
	publisher := &models.Publisher{}

	err := svc.db.
		NewSelect().
		Model(publisher).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Publisher")
		}
		return nil, errors.WithStack(err)
	}

	return publisher, nil
}

// ListPublishers returns publishers in insertion order.
func (svc *Service) ListPublishers(ctx context.Context, opts ListPublishersOptions) ([]*models.Publisher, error) {
	publishers := []*models.Publisher{}

	err := svc.db.
		NewSelect().
		Model(&publishers).
		Order("p.id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return publishers, nil
}
