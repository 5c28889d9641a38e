package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeserver/internal/analytics"
	"badgeserver/internal/domain"
	"badgeserver/internal/repository"
)

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

type fakeDB struct {
	row      fakeRow
	execErr  error
	execSQL  []string
	execArgs [][]any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return f.row
}

func snapshot() domain.AnalyticsSnapshot {
	s := domain.AnalyticsSnapshot{
		VendorMonthly: make([]int64, domain.AnalyticsSlots),
		RawMonthly:    make([]int64, domain.AnalyticsSlots),
	}
	s.VendorMonthly[9] = 3
	return s
}

func TestLoad_Found(t *testing.T) {
	raw, err := json.Marshal(snapshot())
	require.NoError(t, err)

	repo := repository.NewAnalyticsRepositoryForTest(&fakeDB{row: fakeRow{data: raw}}, "main")

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snapshot(), got)
}

func TestLoad_NoRows(t *testing.T) {
	repo := repository.NewAnalyticsRepositoryForTest(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}, "main")

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, analytics.ErrNoSnapshot)
}

func TestLoad_QueryError(t *testing.T) {
	expectedErr := errors.New("connection reset")
	repo := repository.NewAnalyticsRepositoryForTest(&fakeDB{row: fakeRow{err: expectedErr}}, "main")

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, expectedErr)
}

func TestSave_Upserts(t *testing.T) {
	db := &fakeDB{}
	repo := repository.NewAnalyticsRepositoryForTest(db, "main")

	require.NoError(t, repo.Save(context.Background(), snapshot()))

	require.Len(t, db.execSQL, 1)
	assert.Contains(t, db.execSQL[0], "ON CONFLICT (id)")
	assert.Equal(t, "main", db.execArgs[0][0])

	var saved domain.AnalyticsSnapshot
	require.NoError(t, json.Unmarshal(db.execArgs[0][1].([]byte), &saved))
	assert.Equal(t, snapshot(), saved)
}

func TestSave_Error(t *testing.T) {
	expectedErr := errors.New("read only")
	repo := repository.NewAnalyticsRepositoryForTest(&fakeDB{execErr: expectedErr}, "main")

	err := repo.Save(context.Background(), snapshot())
	assert.ErrorIs(t, err, expectedErr)
}
