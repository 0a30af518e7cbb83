package genres

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/hondanabooks/hondana/pkg/clock"
	"github.com/hondanabooks/hondana/pkg/errcodes"
	"github.com/hondanabooks/hondana/pkg/migrations"
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
	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

var testClock = clock.Frozen{Time: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)}

func TestService_CreateGenre(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	genre, err := svc.CreateGenre(ctx, CreateGenreOptions{Name: "Mystery"})
	require.NoError(t, err)
	assert.NotZero(t, genre.ID)
	assert.Equal(t, "Mystery", genre.Name)
	assert.True(t, genre.CreatedAt.Equal(testClock.Time))
}

func TestService_CreateGenre_DuplicateName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	_, err := svc.CreateGenre(ctx, CreateGenreOptions{Name: "Mystery"})
	require.NoError(t, err)

	_, err = svc.CreateGenre(ctx, CreateGenreOptions{Name: "Mystery"})
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.HTTPCode)
	assert.Equal(t, "already_exists", errResp.Code)
}

func TestService_ListGenres(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	for _, name := range []string{"Mystery", "Romance", "Science Fiction"} {
		_, err := svc.CreateGenre(ctx, CreateGenreOptions{Name: name})
		require.NoError(t, err)
	}

	genres, err := svc.ListGenres(ctx, ListGenresOptions{Limit: 10, Offset: 0})
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, "Mystery", genres[0].Name)

	page, err := svc.ListGenres(ctx, ListGenresOptions{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Science Fiction", page[0].Name)
}
