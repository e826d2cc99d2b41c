package storage

// Config holds configuration for the snapshot object storage.
type Config struct {
	// Endpoint is the host[:port] of the S3-compatible service. Empty disables storage.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives data directory snapshots.
	Bucket string `mapstructure:"bucket" default:"chroma-snapshots"`
	// Region is the bucket location (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Enabled reports whether an object storage endpoint is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}
