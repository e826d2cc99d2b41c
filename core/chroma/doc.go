// Package chroma describes the external Chroma vector database server this
// launcher configures.
//
// Nothing in this package indexes or searches vectors. It only holds what the
// launcher needs to hand the server off to its own process:
//
//   - Settings: the immutable server configuration (backend, persistence
//     directory, bind host/port, telemetry preference).
//   - Application: the located server executable and the command that runs it.
//   - Client: a small HTTP client for the server's heartbeat and version
//     endpoints, used for readiness and health checks.
//
// # Usage
//
//	settings, err := chroma.NewSettings("/www/wwwroot/chat-app/chroma-data")
//	app, err := chroma.Locate("chroma")
//	cmd := app.Command(ctx, settings)
package chroma
