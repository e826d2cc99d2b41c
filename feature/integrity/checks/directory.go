package checks

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// DirectoryReport describes the persistence directory.
type DirectoryReport struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
	Error    string `json:"error,omitempty"`
}

// OK reports whether the server can persist into the directory.
func (r DirectoryReport) OK() bool { return r.Exists && r.Writable }

// CheckDirectory verifies that dir exists, is a directory and accepts new files.
func CheckDirectory(dir string) DirectoryReport {
	report := DirectoryReport{Path: dir}

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return report
	case err != nil:
		report.Error = err.Error()
		return report
	case !info.IsDir():
		report.Error = fmt.Sprintf("%s is not a directory", dir)
		return report
	}
	report.Exists = true

	f, err := os.CreateTemp(dir, ".write-check-*")
	if err != nil {
		report.Error = err.Error()
		return report
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	report.Writable = true

	return report
}

// FixDirectory creates the directory and its parents.
func FixDirectory(dir string, logger *zap.Logger) error {
	logger.Info("Creating data directory", zap.String("path", dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
