// Package snapshot copies the Chroma persistence directory to and from object
// storage.
//
// Snapshots live under snapshots/<UTC timestamp>/ in the configured bucket,
// one object per file, keyed by the path relative to the data directory. The
// server should be stopped while a snapshot is taken; files are read as-is.
//
// # Operations
//
//   - Snapshot: upload the directory, creating the bucket when missing.
//   - List: snapshot names, newest first.
//   - Restore: download a snapshot into an empty directory.
//   - Verify: list files that differ from a snapshot by presence or size.
//   - Prune: delete all but the newest N snapshots.
package snapshot
