package borrowings

import (
	"context"
	"testing"
	"time"

	"github.com/hondanabooks/hondana/pkg/authors"
	"github.com/hondanabooks/hondana/pkg/books"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/genres"
	"github.com/hondanabooks/hondana/pkg/publishers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullLendingFlow runs the whole lifecycle through the services: set up
// the catalog, lend the book out, reject the second borrower, return it, and
// lend it again.
func TestFullLendingFlow(t *testing.T) {
	t.Parallel()

	db := setupFileDB(t)
	ctx := context.Background()

	authorService := authors.NewService(db, testClock)
	publisherService := publishers.NewService(db, testClock)
	genreService := genres.NewService(db, testClock)
	bookService := books.NewService(db, testClock)
	borrowingService := NewService(db, testClock, 3)

	author, err := authorService.CreateAuthor(ctx, authors.CreateAuthorOptions{
		Name:      "Natsume Soseki",
		Birthdate: time.Date(1867, 2, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	publisher, err := publisherService.CreatePublisher(ctx, publishers.CreatePublisherOptions{
		Name:            "Iwanami Shoten",
		EstablishedYear: 1913,
	})
	require.NoError(t, err)

	genre, err := genreService.CreateGenre(ctx, genres.CreateGenreOptions{Name: "Literary Fiction"})
	require.NoError(t, err)

	book, err := bookService.CreateBook(ctx, books.CreateBookOptions{
		Title:       "Kokoro",
		ISBN:        9781234567001,
		PublishDate: time.Date(1914, 4, 20, 0, 0, 0, 0, time.UTC),
		AuthorID:    author.ID,
		PublisherID: publisher.ID,
		GenreIDs:    []int{genre.ID},
	})
	require.NoError(t, err)
	assert.True(t, book.IsAvailable)

	aliceLoan, err := borrowingService.Borrow(ctx, BorrowOptions{BookID: book.ID, BorrowerName: "Alice"})
	require.NoError(t, err)

	_, err = borrowingService.Borrow(ctx, BorrowOptions{BookID: book.ID, BorrowerName: "Bob"})
	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, "book_unavailable", errResp.Code)

	_, err = borrowingService.Return(ctx, aliceLoan.ID)
	require.NoError(t, err)

	bobLoan, err := borrowingService.Borrow(ctx, BorrowOptions{BookID: book.ID, BorrowerName: "Bob"})
	require.NoError(t, err)
	assert.True(t, bobLoan.Open())

	// The book's history shows both loans in borrow order.
	history, err := bookService.GetHistory(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Alice", history[0].BorrowerName)
	assert.False(t, history[0].Open())
	assert.Equal(t, "Bob", history[1].BorrowerName)
	assert.True(t, history[1].Open())

	// And the author's book list carries the genre ids.
	authorBooks, err := authorService.GetBooks(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, authorBooks, 1)
	assert.Equal(t, []int{genre.ID}, authorBooks[0].GenreIDs)
}
