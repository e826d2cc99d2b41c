package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"chroma-launcher/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Prefix is the object key prefix of all snapshots.
const Prefix = "snapshots/"

// Fixed width keeps lexical order chronological.
const nameLayout = "20060102T150405.000Z"

// Snapshot summarises one upload.
type Snapshot struct {
	Name    string `json:"name"`
	Objects int    `json:"objects"`
	Bytes   int64  `json:"bytes"`
}

// Service manages snapshots in one bucket.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a snapshot service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, logger: logger, now: time.Now}
}

// Snapshot uploads every regular file below dataDir.
func (s *Service) Snapshot(ctx context.Context, dataDir string) (*Snapshot, error) {
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	snap := &Snapshot{Name: s.now().UTC().Format(nameLayout)}
	prefix := Prefix + snap.Name + "/"

	err := filepath.WalkDir(dataDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dataDir, p)
		if err != nil {
			return err
		}
		n, err := s.upload(ctx, p, prefix+filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		snap.Objects++
		snap.Bytes += n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot %s failed: %w", snap.Name, err)
	}
	if snap.Objects == 0 {
		return nil, fmt.Errorf("data directory %s is empty, nothing to snapshot", dataDir)
	}

	s.logger.Info("Snapshot uploaded",
		zap.String("name", snap.Name),
		zap.Int("objects", snap.Objects),
		zap.Int64("bytes", snap.Bytes),
	)
	return snap, nil
}

func (s *Service) upload(ctx context.Context, file, key string) (int64, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if _, err := s.client.PutObject(ctx, s.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	}); err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return info.Size(), nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	s.logger.Info("Creating snapshot bucket", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// List returns snapshot names, newest first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: Prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(obj.Key, Prefix), "/")
		if name != "" && strings.HasSuffix(obj.Key, "/") {
			names = append(names, name)
		}
	}
	// Timestamp names sort chronologically
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Restore downloads snapshot name into dataDir, which must be empty or absent.
// A failed restore removes whatever it wrote, so it can be retried.
func (s *Service) Restore(ctx context.Context, name, dataDir string) (*Snapshot, error) {
	entries, err := os.ReadDir(dataDir)
	switch {
	case err == nil && len(entries) > 0:
		return nil, fmt.Errorf("refusing to restore into non-empty directory %s", dataDir)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}
	created := err != nil

	snap, err := s.restore(ctx, name, dataDir)
	if err != nil {
		if cerr := clearDir(dataDir, created); cerr != nil {
			s.logger.Warn("Failed to clean up partial restore", zap.String("data_dir", dataDir), zap.Error(cerr))
		}
		return nil, err
	}

	s.logger.Info("Snapshot restored", zap.String("name", name), zap.String("data_dir", dataDir), zap.Int("objects", snap.Objects))
	return snap, nil
}

func (s *Service) restore(ctx context.Context, name, dataDir string) (*Snapshot, error) {
	snap := &Snapshot{Name: name}
	prefix := Prefix + name + "/"
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshot %s: %w", name, obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}
		target := filepath.Join(dataDir, filepath.FromSlash(path.Clean("/" + rel)))
		n, err := s.download(ctx, obj.Key, target)
		if err != nil {
			return nil, err
		}
		snap.Objects++
		snap.Bytes += n
	}
	if snap.Objects == 0 {
		return nil, fmt.Errorf("snapshot %s not found", name)
	}
	return snap, nil
}

// clearDir removes dir when it was created by the restore, or empties it otherwise.
func clearDir(dir string, created bool) error {
	if created {
		return os.RemoveAll(dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) download(ctx context.Context, key, target string) (int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}
	f, err := os.Create(target)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, obj)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", target, err)
	}
	return n, nil
}

// Prune deletes all but the newest keep snapshots and returns the removed names.
func (s *Service) Prune(ctx context.Context, keep int) ([]string, error) {
	if keep < 1 {
		return nil, fmt.Errorf("keep must be at least 1, got %d", keep)
	}
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) <= keep {
		return nil, nil
	}

	removed := names[keep:]
	for _, name := range removed {
		if err := s.remove(ctx, name); err != nil {
			return nil, err
		}
		s.logger.Info("Snapshot pruned", zap.String("name", name))
	}
	return removed, nil
}

func (s *Service) remove(ctx context.Context, name string) error {
	var objects []minio.ObjectInfo
	opts := minio.ListObjectsOptions{Prefix: Prefix + name + "/", Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list snapshot %s: %w", name, obj.Err)
		}
		objects = append(objects, obj)
	}

	objectsCh := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		objectsCh <- obj
	}
	close(objectsCh)

	var firstErr error
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to remove %s: %w", rErr.ObjectName, rErr.Err)
		}
	}
	return firstErr
}
