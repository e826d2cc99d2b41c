package database

// Config holds configuration for the launch registry database.
type Config struct {
	// Driver is the database driver (sqlite, mysql). Empty disables the registry.
	Driver string `mapstructure:"driver" default:""`
	// Host is the database host (mysql only).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql only).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql only).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql only).
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"chroma-launcher.db"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Enabled reports whether a registry database is configured.
func (c Config) Enabled() bool {
	return c.Driver != ""
}
