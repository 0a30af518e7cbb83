package authors

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/migrations"
	"github.com/hondanabooks/hondana/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.RegisterModel((*models.BookGenre)(nil))
	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

var testClock = clock.Frozen{Time: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)}

func TestService_CreateAuthor(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, CreateAuthorOptions{
		Name:      "Natsume Soseki",
		Birthdate: time.Date(1867, 2, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotZero(t, author.ID)
	assert.Equal(t, "Natsume Soseki", author.Name)

	fetched, err := svc.RetrieveAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, fetched.ID)
}

func TestService_CreateAuthor_DuplicateName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	opts := CreateAuthorOptions{
		Name:      "Natsume Soseki",
		Birthdate: time.Date(1867, 2, 9, 0, 0, 0, 0, time.UTC),
	}
	_, err := svc.CreateAuthor(ctx, opts)
	require.NoError(t, err)

	_, err = svc.CreateAuthor(ctx, opts)
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.HTTPCode)
	assert.Equal(t, "already_exists", errResp.Code)

	// Uniqueness is an exact match, so a case-differing name is a new author.
	_, err = svc.CreateAuthor(ctx, CreateAuthorOptions{
		Name:      "natsume soseki",
		Birthdate: opts.Birthdate,
	})
	require.NoError(t, err)
}

func TestService_CreateAuthor_FutureBirthdate(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)

	_, err := svc.CreateAuthor(context.Background(), CreateAuthorOptions{
		Name:      "Time Traveler",
		Birthdate: testClock.Time.AddDate(1, 0, 0),
	})
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, errResp.HTTPCode)
}

func TestService_RetrieveAuthor_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)

	_, err := svc.RetrieveAuthor(context.Background(), 999)
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusNotFound, errResp.HTTPCode)
}

func TestService_GetBooks(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, CreateAuthorOptions{
		Name:      "Natsume Soseki",
		Birthdate: time.Date(1867, 2, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO publishers (name, established_year) VALUES ('Iwanami Shoten', 1913)`)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO books (title, isbn, publish_date, author_id, publisher_id, is_available)
		VALUES ('Kokoro', 9781234567001, '1914-04-20', ?, 1, TRUE),
		       ('Botchan', 9781234567002, '1906-04-01', ?, 1, TRUE)
	`, author.ID, author.ID)
	require.NoError(t, err)

	books, err := svc.GetBooks(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Kokoro", books[0].Title)
	assert.NotNil(t, books[0].GenreIDs)

	// Missing author is a 404, not an empty list.
	_, err = svc.GetBooks(ctx, 999)
	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusNotFound, errResp.HTTPCode)
}
