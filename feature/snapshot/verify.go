package snapshot

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FileResult is the comparison of one file between the data directory and a snapshot.
type FileResult struct {
	Path            string   `json:"path"`
	LocalPresent    bool     `json:"local_present"`
	SnapshotPresent bool     `json:"snapshot_present"`
	Mismatch        []string `json:"mismatch"`
}

// Diff lists the files that differ between the data directory and a snapshot.
type Diff struct {
	Name    string       `json:"name"`
	Results []FileResult `json:"results"`
	Summary DiffSummary  `json:"summary"`
}

// DiffSummary provides aggregate counts.
type DiffSummary struct {
	TotalFiles      int `json:"total_files"`
	MissingLocal    int `json:"missing_local"`
	MissingSnapshot int `json:"missing_snapshot"`
	Mismatches      int `json:"mismatches"`
}

// InSync reports whether the data directory matches the snapshot.
func (d *Diff) InSync() bool { return len(d.Results) == 0 }

// Verify compares the files below dataDir with the objects of snapshot name by
// presence and size. Only files with an issue are listed.
func (s *Service) Verify(ctx context.Context, name, dataDir string) (*Diff, error) {
	local, err := localIndex(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", dataDir, err)
	}
	remote, err := s.remoteIndex(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(remote) == 0 {
		return nil, fmt.Errorf("snapshot %s not found", name)
	}

	union := make(map[string]struct{}, len(local)+len(remote))
	for key := range local {
		union[key] = struct{}{}
	}
	for key := range remote {
		union[key] = struct{}{}
	}
	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	diff := &Diff{Name: name, Results: []FileResult{}}
	diff.Summary.TotalFiles = len(keys)
	for _, key := range keys {
		localSize, inLocal := local[key]
		remoteSize, inRemote := remote[key]

		r := FileResult{Path: key, LocalPresent: inLocal, SnapshotPresent: inRemote, Mismatch: []string{}}
		switch {
		case !inLocal:
			diff.Summary.MissingLocal++
		case !inRemote:
			diff.Summary.MissingSnapshot++
		case localSize != remoteSize:
			r.Mismatch = append(r.Mismatch, fmt.Sprintf("size: local=%d snapshot=%d", localSize, remoteSize))
			diff.Summary.Mismatches++
		default:
			continue
		}
		diff.Results = append(diff.Results, r)
	}

	s.logger.Info("Snapshot verified",
		zap.String("name", name),
		zap.Int("total", diff.Summary.TotalFiles),
		zap.Int("missing_local", diff.Summary.MissingLocal),
		zap.Int("missing_snapshot", diff.Summary.MissingSnapshot),
		zap.Int("mismatches", diff.Summary.Mismatches),
	)
	return diff, nil
}

// localIndex maps slash-separated relative paths to file sizes.
func localIndex(dataDir string) (map[string]int64, error) {
	index := make(map[string]int64)
	err := filepath.WalkDir(dataDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dataDir, p)
		if err != nil {
			return err
		}
		index[filepath.ToSlash(rel)] = info.Size()
		return nil
	})
	return index, err
}

func (s *Service) remoteIndex(ctx context.Context, name string) (map[string]int64, error) {
	prefix := Prefix + name + "/"
	index := make(map[string]int64)
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshot %s: %w", name, obj.Err)
		}
		key := strings.TrimPrefix(obj.Key, prefix)
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		index[key] = obj.Size
	}
	return index, nil
}
