// Package logger provides a structured logging facility based on Zap.
//
// Console encoding is the default because the launcher mostly runs in a
// terminal or under a panel's process manager; json is available for log
// shippers.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber
// context so admin API request logs can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("正在启动Chroma向量数据库...")
package logger
