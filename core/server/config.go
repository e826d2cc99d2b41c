package server

import "net"

// Config holds configuration for the admin HTTP server.
type Config struct {
	// Host is the interface the admin API listens on.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the admin API port. Empty disables the admin API.
	Port string `mapstructure:"port" default:""`
	// ApiKey is the secret key required to access the admin API.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Enabled reports whether the admin API should be started.
func (c Config) Enabled() bool {
	return c.Port != "" && c.Port != "0"
}

// Addr returns the listen address for the admin API.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
