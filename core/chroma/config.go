package chroma

// Config holds the configurable parts of the Chroma deployment.
// Host, port and telemetry are deliberately absent: they are fixed constants.
type Config struct {
	// DataDir is the persistence directory handed to the server.
	DataDir string `mapstructure:"data_dir" default:"/www/wwwroot/chat-app/chroma-data"`
	// Binary is the name or path of the Chroma server executable.
	Binary string `mapstructure:"binary" default:"chroma"`
	// ReadyTimeoutSeconds bounds how long serve mode waits for the first heartbeat.
	ReadyTimeoutSeconds int `mapstructure:"ready_timeout_seconds" default:"30"`
}
