package borrowings

import (
	"context"
	"database/sql"

	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type BorrowOptions struct {
	BookID       int
	BorrowerName string
}

type Service struct {
	db       *bun.DB
	clock    clock.Clock
	maxLoans int
}

// NewService creates a borrowing service. maxLoans is the per-borrower cap on
// concurrently open borrowings.
func NewService(db *bun.DB, clk clock.Clock, maxLoans int) *Service {
	return &Service{db: db, clock: clk, maxLoans: maxLoans}
}

// Borrow checks a book out to a borrower. The whole operation is one
// transaction: the availability flip is a guarded update, so two concurrent
// borrows of the same book cannot both succeed, and it also takes the writer
// lock before the loan-cap count, so the cap cannot be raced past either.
func (svc *Service) Borrow(ctx context.Context, opts BorrowOptions) (*models.Borrowing, error) {
	now := svc.clock.Now()
	borrowing := &models.Borrowing{
		BookID:       opts.BookID,
		BorrowerName: opts.BorrowerName,
		BorrowDate:   now,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.
			NewSelect().
			Model((*models.Book)(nil)).
			Where("b.id = ?", opts.BookID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Book")
		}

		res, err := tx.
			NewUpdate().
			Model((*models.Book)(nil)).
			Set("is_available = ?", false).
			Set("updated_at = ?", now).
			Where("id = ?", opts.BookID).
			Where("is_available = ?", true).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.WithStack(err)
		}
		if affected == 0 {
			return errcodes.BookUnavailable()
		}

		open, err := tx.
			NewSelect().
			Model((*models.Borrowing)(nil)).
			Where("bh.borrower_name = ?", opts.BorrowerName).
			Where("bh.return_date IS NULL").
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if open >= svc.maxLoans {
			return errcodes.BorrowLimitReached(svc.maxLoans)
		}

		_, err = tx.
			NewInsert().
			Model(borrowing).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, err
	}

	return borrowing, nil
}

// Return closes an open borrowing and makes the book available again. A
// closed borrowing stays closed: returning it again is an error and its
// return date never changes.
func (svc *Service) Return(ctx context.Context, borrowingID int) (*models.Borrowing, error) {
	now := svc.clock.Now()
	borrowing := &models.Borrowing{}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		err := tx.
			NewSelect().
			Model(borrowing).
			Where("bh.id = ?", borrowingID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errcodes.NotFound("Borrowing")
			}
			return errors.WithStack(err)
		}

		res, err := tx.
			NewUpdate().
			Model((*models.Borrowing)(nil)).
			Set("return_date = ?", now).
			Where("id = ?", borrowingID).
			Where("return_date IS NULL").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.WithStack(err)
		}
		if affected == 0 {
			return errcodes.AlreadyReturned()
		}

		_, err = tx.
			NewUpdate().
			Model((*models.Book)(nil)).
			Set("is_available = ?", true).
			Set("updated_at = ?", now).
			Where("id = ?", borrowing.BookID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		borrowing.ReturnDate = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return borrowing, nil
}
