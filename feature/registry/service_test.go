package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"chroma-launcher/core/chroma"
	"chroma-launcher/core/database"
	"chroma-launcher/feature/launcher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	svc, err := NewService(db)
	require.NoError(t, err)
	return svc
}

func testResult(t *testing.T) *launcher.Result {
	settings, err := chroma.NewSettings("/tmp/x/chroma-data")
	require.NoError(t, err)
	return &launcher.Result{Settings: settings, App: &chroma.Application{}}
}

func TestNewService_NilDB(t *testing.T) {
	_, err := NewService(nil)
	assert.Error(t, err)
}

func TestRecordStart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	ok, err := svc.RecordStart(ctx, "chroma", "/tmp/x/chroma-data", false, testResult(t), nil)
	require.NoError(t, err)
	assert.Equal(t, StatusStarted, ok.Status)
	assert.Equal(t, "duckdb+parquet", ok.Backend)
	assert.Equal(t, "http://127.0.0.1:8000", ok.URL)
	assert.Nil(t, ok.EndedAt)

	failed, err := svc.RecordStart(ctx, "chroma", "/denied", false, nil, errors.New("directory: permission denied"))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "/denied", failed.DataDir)
	assert.Equal(t, "directory: permission denied", failed.Error)
	assert.NotNil(t, failed.EndedAt)
}

func TestRecordExit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.RecordStart(ctx, "chroma", "/data", true, testResult(t), nil)
	require.NoError(t, err)
	require.NoError(t, svc.RecordExit(ctx, rec.ID, errors.New("serve: exit status 3")))

	records, err := svc.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, StatusCrashed, records[0].Status)
	assert.Equal(t, "serve: exit status 3", records[0].Error)
	assert.NotNil(t, records[0].EndedAt)

	assert.Error(t, svc.RecordExit(ctx, uuid.New(), nil))
}

func TestRecent_NewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		rec, err := svc.RecordStart(ctx, "chroma", "/data", false, testResult(t), nil)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
		time.Sleep(5 * time.Millisecond)
	}

	records, err := svc.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[1], records[1].ID)

	all, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
