// Package database handles the launch registry database connection.
//
// It wraps GORM and configures either a local SQLite file (the default, next
// to the launcher) or a MySQL server, as commonly found on panel-managed hosts.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Launch registry unavailable", zap.Error(err))
//	}
package database
