package books

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

// Sort keys accepted by ListBooks.
const (
	SortByTitle       = "title"
	SortByAuthor      = "author"
	SortByPublishDate = "publish_date"
)

type CreateBookOptions struct {
	Title       string
	ISBN        int64
	PublishDate time.Time
	AuthorID    int
	PublisherID int
	GenreIDs    []int
}

type ListBooksOptions struct {
	Limit  int
	Offset int
	SortBy string
}

type Service struct {
	db    *bun.DB
	clock clock.Clock
}

func NewService(db *bun.DB, clk clock.Clock) *Service {
	return &Service{db: db, clock: clk}
}

// CreateBook creates a new book and its genre associations in one
// transaction. The author, publisher, and every genre must exist, and the
// ISBN must not be taken. Either the book row and all join rows commit, or
// nothing does.
func (svc *Service) CreateBook(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	if opts.PublishDate.After(svc.clock.Now()) {
		return nil, errcodes.ValidationError("Publish date cannot be in the future.")
	}

	now := svc.clock.Now()
	book := &models.Book{
		Title:       opts.Title,
		ISBN:        opts.ISBN,
		PublishDate: opts.PublishDate,
		AuthorID:    opts.AuthorID,
		PublisherID: opts.PublisherID,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.
			NewSelect().
			Model((*models.Author)(nil)).
			Where("a.id = ?", opts.AuthorID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Author")
		}

		exists, err = tx.
			NewSelect().
			Model((*models.Publisher)(nil)).
			Where("p.id = ?", opts.PublisherID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Publisher")
		}

		for _, genreID := range opts.GenreIDs {
			exists, err = tx.
				NewSelect().
				Model((*models.Genre)(nil)).
				Where("g.id = ?", genreID).
				Exists(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
			if !exists {
				return errcodes.NotFound("Genre")
			}
		}

		exists, err = tx.
			NewSelect().
			Model((*models.Book)(nil)).
			Where("b.isbn = ?", opts.ISBN).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if exists {
			return errcodes.AlreadyExists("Book")
		}

		_, err = tx.
			NewInsert().
			Model(book).
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		if len(opts.GenreIDs) > 0 {
			joins := make([]*models.BookGenre, 0, len(opts.GenreIDs))
			for _, genreID := range opts.GenreIDs {
				joins = append(joins, &models.BookGenre{
					BookID:  book.ID,
					GenreID: genreID,
				})
			}
			_, err = tx.
				NewInsert().
				Model(&joins).
				Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	book.GenreIDs = opts.GenreIDs
	if book.GenreIDs == nil {
		book.GenreIDs = []int{}
	}

	return book, nil
}

// RetrieveBook fetches a book by id with its genre ids populated.
func (svc *Service) RetrieveBook(ctx context.Context, id int) (*models.Book, error) {
	book := &models.Book{}

	err := svc.db.
		NewSelect().
		Model(book).
		Relation("Genres").
		Where("b.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	book.PopulateGenreIDs()

	return book, nil
}

// ListBooks returns books ordered by the requested sort key. Ties are broken
// by id so pages are stable. Sorting by author uses the author's name, not
// the foreign key.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, error) {
	books := []*models.Book{}

	q := svc.db.
		NewSelect().
		Model(&books).
		Relation("Genres").
		Limit(opts.Limit).
		Offset(opts.Offset)

	switch opts.SortBy {
	case SortByAuthor:
		q = q.
			Join("INNER JOIN authors AS a ON a.id = b.author_id").
			Order("a.name ASC")
	case SortByPublishDate:
		q = q.Order("b.publish_date ASC")
	default:
		q = q.Order("b.title ASC")
	}
	q = q.Order("b.id ASC")

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, book := range books {
		book.PopulateGenreIDs()
	}

	return books, nil
}

// GetHistory returns the book's full borrowing history ordered by borrow
// date. The book must exist.
func (svc *Service) GetHistory(ctx context.Context, bookID int) ([]*models.Borrowing, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Where("b.id = ?", bookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !exists {
		return nil, errcodes.NotFound("Book")
	}

	history := []*models.Borrowing{}
	err = svc.db.
		NewSelect().
		Model(&history).
		Where("bh.book_id = ?", bookID).
		Order("bh.borrow_date ASC").
		Order("bh.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return history, nil
}
