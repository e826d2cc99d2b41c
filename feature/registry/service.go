package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chroma-launcher/feature/launcher"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLimit is the number of records Recent returns without a limit.
const DefaultLimit = 20

// Service stores launch records.
type Service struct {
	db *gorm.DB
}

// NewService creates the service and migrates the table.
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, errors.New("registry: database connection is nil")
	}
	if err := db.AutoMigrate(&LaunchRecord{}); err != nil {
		return nil, fmt.Errorf("registry: failed to migrate: %w", err)
	}
	return &Service{db: db}, nil
}

// RecordStart stores the outcome of the startup routine. res is nil when it failed.
func (s *Service) RecordStart(ctx context.Context, binary, dataDir string, serve bool, res *launcher.Result, startErr error) (*LaunchRecord, error) {
	rec := &LaunchRecord{
		ID:        uuid.New(),
		Binary:    binary,
		DataDir:   dataDir,
		Serve:     serve,
		Status:    StatusStarted,
		StartedAt: time.Now().UTC(),
	}
	if res != nil {
		rec.Backend = res.Settings.Backend()
		rec.DataDir = res.Settings.PersistDirectory()
		rec.URL = res.Settings.URL()
	}
	if startErr != nil {
		rec.Status = StatusFailed
		rec.Error = startErr.Error()
		now := rec.StartedAt
		rec.EndedAt = &now
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("registry: failed to record launch: %w", err)
	}
	return rec, nil
}

// RecordExit closes a record after Serve returns.
func (s *Service) RecordExit(ctx context.Context, id uuid.UUID, serveErr error) error {
	now := time.Now().UTC()
	updates := map[string]any{"status": StatusStopped, "ended_at": now, "error": ""}
	if serveErr != nil {
		updates["status"] = StatusCrashed
		updates["error"] = serveErr.Error()
	}
	res := s.db.WithContext(ctx).Model(&LaunchRecord{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("registry: failed to update launch %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("registry: launch %s not found", id)
	}
	return nil
}

// Recent returns the newest records first.
func (s *Service) Recent(ctx context.Context, limit int) ([]LaunchRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var records []LaunchRecord
	err := s.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("registry: failed to list launches: %w", err)
	}
	return records, nil
}
