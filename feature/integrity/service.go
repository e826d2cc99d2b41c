package integrity

import (
	"context"
	"path/filepath"

	"chroma-launcher/core/chroma"
	"chroma-launcher/core/storage"
	"chroma-launcher/feature/integrity/checks"

	"go.uber.org/zap"
)

// Report combines every check.
type Report struct {
	Healthy   bool                   `json:"healthy"`
	Directory checks.DirectoryReport `json:"directory"`
	Binary    checks.BinaryReport    `json:"binary"`
	Server    checks.ServerReport    `json:"server"`
	Storage   checks.StorageReport   `json:"storage"`
}

// Service runs deployment checks.
type Service struct {
	cfg    chroma.Config
	url    string
	chroma *chroma.Client
	store  storage.Client
	bucket string
	locate func(string) (*chroma.Application, error)
	logger *zap.Logger
}

// NewService creates a new integrity service. store may be nil.
func NewService(cfg chroma.Config, url string, client *chroma.Client, store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		cfg:    cfg,
		url:    url,
		chroma: client,
		store:  store,
		bucket: bucket,
		locate: chroma.Locate,
		logger: logger,
	}
}

func (s *Service) dataDir() string {
	if abs, err := filepath.Abs(s.cfg.DataDir); err == nil {
		return abs
	}
	return s.cfg.DataDir
}

// CheckDirectory checks the persistence directory.
func (s *Service) CheckDirectory() checks.DirectoryReport {
	return checks.CheckDirectory(s.dataDir())
}

// FixDirectory creates the persistence directory.
func (s *Service) FixDirectory() error {
	return checks.FixDirectory(s.dataDir(), s.logger)
}

// CheckBinary checks that the server executable resolves.
func (s *Service) CheckBinary() checks.BinaryReport {
	return checks.CheckBinary(s.locate, s.cfg.Binary)
}

// CheckServer checks the running server.
func (s *Service) CheckServer() checks.ServerReport {
	return checks.CheckServer(s.chroma, s.url)
}

// CheckStorage checks the snapshot bucket.
func (s *Service) CheckStorage(ctx context.Context) checks.StorageReport {
	return checks.CheckStorage(ctx, s.store, s.bucket)
}

// Run executes all checks.
func (s *Service) Run(ctx context.Context) Report {
	r := Report{
		Directory: s.CheckDirectory(),
		Binary:    s.CheckBinary(),
		Server:    s.CheckServer(),
		Storage:   s.CheckStorage(ctx),
	}
	r.Healthy = r.Directory.OK() && r.Binary.Found && r.Server.Reachable &&
		(r.Storage.Skipped || r.Storage.Exists)
	return r
}
