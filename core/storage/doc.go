// Package storage provides an abstraction over S3-compatible object storage.
//
// It wraps the MinIO Go client behind the Client interface so the snapshot
// and integrity features can be tested with the testify mock in
// core/storage/mocks. Both AWS S3 and self-hosted MinIO work.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
