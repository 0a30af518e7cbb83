package publishers

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

func TestService_CreatePublisher(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	publisher, err := svc.CreatePublisher(ctx, CreatePublisherOptions{
		Name:            "Iwanami Shoten",
		EstablishedYear: 1913,
	})
	require.NoError(t, err)
	assert.NotZero(t, publisher.ID)
	assert.Equal(t, 1913, publisher.EstablishedYear)
}

func TestService_CreatePublisher_DuplicateName(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	opts := CreatePublisherOptions{Name: "Iwanami Shoten", EstablishedYear: 1913}
	_, err := svc.CreatePublisher(ctx, opts)
	require.NoError(t, err)

	_, err = svc.CreatePublisher(ctx, opts)
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusBadRequest, errResp.HTTPCode)
	assert.Equal(t, "already_exists", errResp.Code)
}

func TestService_CreatePublisher_FutureYear(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)

	_, err := svc.CreatePublisher(context.Background(), CreatePublisherOptions{
		Name:            "Future House",
		EstablishedYear: testClock.Time.Year() + 1,
	})
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, errResp.HTTPCode)

	// The current year itself is fine.
	_, err = svc.CreatePublisher(context.Background(), CreatePublisherOptions{
		Name:            "Brand New House",
		EstablishedYear: testClock.Time.Year(),
	})
	require.NoError(t, err)
}

func TestService_ListPublishers(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewService(db, testClock)
	ctx := context.Background()

	names := []string{"Iwanami Shoten", "Kodansha", "Shueisha"}
	for _, name := range names {
		_, err := svc.CreatePublisher(ctx, CreatePublisherOptions{Name: name, EstablishedYear: 1913})
		require.NoError(t, err)
	}

	publishers, err := svc.ListPublishers(ctx, ListPublishersOptions{Limit: 10, Offset: 0})
	require.NoError(t, err)
	require.Len(t, publishers, 3)
	assert.Equal(t, "Iwanami Shoten", publishers[0].Name)
	assert.Equal(t, "Shueisha", publishers[2].Name)

	page, err := svc.ListPublishers(ctx, ListPublishersOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Kodansha", page[0].Name)
}
