package borrowings

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hondanabooks/hondana/pkg/config"
	"github.com/hondanabooks/hondana/pkg/database"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/migrations"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// setupFileDB uses a temp file database through the production connector so
// goroutines contend on real SQLite locking, not :memory: shortcuts.
func setupFileDB(t *testing.T) *bun.DB {
	t.Helper()

	cfg := config.NewForTest()
	cfg.DatabaseFilePath = filepath.Join(t.TempDir(), "test.db")

	db, err := database.New(cfg)
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestConcurrentBorrow_SameBook has many goroutines race to borrow one book.
// Exactly one may win; every loser gets book_unavailable.
func TestConcurrentBorrow_SameBook(t *testing.T) {
	t.Parallel()

	db := setupFileDB(t)
	svc := NewService(db, testClock, 3)
	ctx := context.Background()

	bookID := seedBook(t, db, "Kokoro", 9781234567001)

	const attempts = 20

	var wg sync.WaitGroup
	var successes atomic.Int32
	unexpected := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Borrow(ctx, BorrowOptions{
				BookID:       bookID,
				BorrowerName: fmt.Sprintf("borrower-%d", i),
			})
			if err == nil {
				successes.Add(1)
				return
			}
			if !errors.Is(err, errcodes.BookUnavailable()) {
				unexpected <- err
			}
		}(i)
	}

	wg.Wait()
	close(unexpected)

	for err := range unexpected {
		t.Error(err)
	}
	assert.Equal(t, int32(1), successes.Load())
	assert.False(t, bookAvailable(t, db, bookID))

	var open int
	err := db.QueryRow(`SELECT COUNT(*) FROM borrowing_history WHERE book_id = ? AND return_date IS NULL`, bookID).Scan(&open)
	require.NoError(t, err)
	assert.Equal(t, 1, open)
}

// TestConcurrentBorrow_LoanCap has one borrower race to borrow many distinct
// books at once. No matter the interleaving, exactly the cap may succeed.
func TestConcurrentBorrow_LoanCap(t *testing.T) {
	t.Parallel()

	db := setupFileDB(t)
	const maxLoans = 3
	svc := NewService(db, testClock, maxLoans)
	ctx := context.Background()

	const attempts = 10
	bookIDs := make([]int, attempts)
	for i := range bookIDs {
		bookIDs[i] = seedBook(t, db, fmt.Sprintf("Book %d", i), 9781234567001+int64(i))
	}

	var wg sync.WaitGroup
	var successes atomic.Int32
	unexpected := make(chan error, attempts)

	for _, bookID := range bookIDs {
		wg.Add(1)
		go func(bookID int) {
			defer wg.Done()
			_, err := svc.Borrow(ctx, BorrowOptions{
				BookID:       bookID,
				BorrowerName: "Alice",
			})
			if err == nil {
				successes.Add(1)
				return
			}
			if !errors.Is(err, errcodes.BorrowLimitReached(maxLoans)) {
				unexpected <- err
			}
		}(bookID)
	}

	wg.Wait()
	close(unexpected)

	for err := range unexpected {
		t.Error(err)
	}
	assert.Equal(t, int32(maxLoans), successes.Load())

	var open int
	err := db.QueryRow(`SELECT COUNT(*) FROM borrowing_history WHERE borrower_name = 'Alice' AND return_date IS NULL`).Scan(&open)
	require.NoError(t, err)
	assert.Equal(t, maxLoans, open)

	// Books whose borrow was rejected must have been flipped back.
	var available int
	err = db.QueryRow(`SELECT COUNT(*) FROM books WHERE is_available`).Scan(&available)
	require.NoError(t, err)
	assert.Equal(t, attempts-maxLoans, available)
}
