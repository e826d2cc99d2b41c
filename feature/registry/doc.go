// Package registry records every launch attempt in the registry database.
//
// Each call to the startup routine produces one LaunchRecord: the settings it
// resolved, whether it succeeded and the failure description if not. Serve
// outcomes update the same record.
//
// # HTTP Endpoints
//
//   - GET /launches : Most recent records (?limit=N, default 20).
package registry
