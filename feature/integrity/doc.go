// Package integrity provides deployment health checks for the Chroma server.
//
// # Checks Provided
//
//   - Directory: the persistence directory exists and accepts new files.
//   - Binary: the server executable resolves on PATH or at its configured path.
//   - Server: the heartbeat endpoint answers; the version is reported when available.
//   - Storage: the snapshot bucket exists (skipped without a storage client).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks (503 when unhealthy).
//   - GET /integrity/directory : Directory check (supports ?fix=true).
//   - GET /integrity/binary : Executable check.
//   - GET /integrity/server : Heartbeat check.
//   - GET /integrity/storage : Bucket check.
package integrity
