package checks

import (
	"context"

	"chroma-launcher/core/storage"
)

// StorageReport describes the snapshot bucket.
type StorageReport struct {
	Bucket  string `json:"bucket"`
	Skipped bool   `json:"skipped,omitempty"`
	Exists  bool   `json:"exists"`
	Error   string `json:"error,omitempty"`
}

// CheckStorage verifies the snapshot bucket. A nil client skips the check.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) StorageReport {
	report := StorageReport{Bucket: bucket}
	if client == nil {
		report.Skipped = true
		return report
	}
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Exists = exists
	return report
}
