// Package server holds the admin HTTP server configuration.
//
// The admin API is a small Fiber application that runs next to a served
// Chroma process and reports its status, integrity and launch history. It is
// unrelated to the Chroma server's own bind address, which is fixed.
//
// # Usage
//
// This package is embedded by core/config and read by the start command to
// decide whether and where to listen.
package server
