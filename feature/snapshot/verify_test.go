package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sizedObjects(sizes map[string]int64) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(sizes))
	for k, n := range sizes {
		ch <- minio.ObjectInfo{Key: k, Size: n}
	}
	close(ch)
	return ch
}

func TestVerify(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chroma.sqlite3"), []byte("12345"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "index"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "index", "data.parquet"), []byte("abcd"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "index", "new.parquet"), []byte("x"), 0o644))

	svc, client := newTestService()
	client.On("ListObjects", mock.Anything, bucket, minio.ListObjectsOptions{Prefix: "snapshots/A/", Recursive: true}).
		Return(sizedObjects(map[string]int64{
			"snapshots/A/chroma.sqlite3":     5,
			"snapshots/A/index/data.parquet": 3,
			"snapshots/A/index/old.parquet":  7,
		}))

	diff, err := svc.Verify(context.Background(), "A", dataDir)
	require.NoError(t, err)
	assert.False(t, diff.InSync())
	assert.Equal(t, DiffSummary{TotalFiles: 4, MissingLocal: 1, MissingSnapshot: 1, Mismatches: 1}, diff.Summary)

	require.Len(t, diff.Results, 3)
	assert.Equal(t, "index/data.parquet", diff.Results[0].Path)
	assert.Equal(t, []string{"size: local=4 snapshot=3"}, diff.Results[0].Mismatch)
	assert.Equal(t, "index/new.parquet", diff.Results[1].Path)
	assert.False(t, diff.Results[1].SnapshotPresent)
	assert.Equal(t, "index/old.parquet", diff.Results[2].Path)
	assert.False(t, diff.Results[2].LocalPresent)
}

func TestVerify_InSync(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "chroma.sqlite3"), []byte("12345"), 0o644))

	svc, client := newTestService()
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(sizedObjects(map[string]int64{"snapshots/A/chroma.sqlite3": 5}))

	diff, err := svc.Verify(context.Background(), "A", dataDir)
	require.NoError(t, err)
	assert.True(t, diff.InSync())
	assert.Equal(t, 1, diff.Summary.TotalFiles)
}

func TestVerify_NotFound(t *testing.T) {
	svc, client := newTestService()
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return(sizedObjects(nil))

	_, err := svc.Verify(context.Background(), "missing", t.TempDir())
	assert.ErrorContains(t, err, "not found")
}
