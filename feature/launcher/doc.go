// Package launcher implements the Chroma startup routine.
//
// Start performs the fixed sequence: create the data directory, build the
// server settings, announce them, locate the server entry point and report
// success. It does not bind or serve anything; that is Serve's job and is
// only done when explicitly requested.
//
// Every failure before success is a StartupError. It is logged once with the
// ❌ marker and returned so the process can exit non-zero.
//
// # Serve
//
// Serve runs the located executable as a child process, forwards its output
// into the logger, waits for the first heartbeat and returns when the process
// exits or the context is cancelled. State can be read concurrently by the
// admin API.
package launcher
