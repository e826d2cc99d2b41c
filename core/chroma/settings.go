package chroma

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
)

const (
	// BackendDuckDBParquet is the embedded storage/query engine used by the deployment.
	BackendDuckDBParquet = "duckdb+parquet"
	// DefaultHost is the loopback address the server binds to.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the HTTP port the server binds to.
	DefaultPort = 8000
)

// ErrEmptyPersistDirectory is returned when settings are built without a directory.
var ErrEmptyPersistDirectory = errors.New("chroma: persist directory is empty")

// Settings is the server configuration record. It is immutable once built;
// every field is read through an accessor.
type Settings struct {
	backend   string
	persist   string
	host      string
	port      int
	telemetry bool
}

// NewSettings builds the deployment settings for the given persistence
// directory. Backend, host, port and telemetry are always the fixed values.
func NewSettings(persistDirectory string) (Settings, error) {
	if persistDirectory == "" {
		return Settings{}, ErrEmptyPersistDirectory
	}
	return Settings{
		backend:   BackendDuckDBParquet,
		persist:   persistDirectory,
		host:      DefaultHost,
		port:      DefaultPort,
		telemetry: false,
	}, nil
}

func (s Settings) Backend() string { return s.backend }
func (s Settings) PersistDirectory() string { return s.persist }
func (s Settings) Host() string { return s.host }
func (s Settings) Port() int { return s.port }
func (s Settings) AnonymizedTelemetry() bool { return s.telemetry }

// Addr returns host:port.
func (s Settings) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// URL returns the HTTP base URL of the server, e.g. http://127.0.0.1:8000.
func (s Settings) URL() string {
	return "http://" + s.Addr()
}

// DefaultURL is the base URL of a server started with the deployment settings.
func DefaultURL() string {
	return "http://" + net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort))
}

// Args returns the command line for `chroma run`.
func (s Settings) Args() []string {
	return []string{
		"run",
		"--path", s.persist,
		"--host", s.host,
		"--port", strconv.Itoa(s.port),
	}
}

// Environ returns the settings as environment variables understood by the
// server, including the legacy names used by duckdb+parquet releases.
func (s Settings) Environ() []string {
	return []string{
		"CHROMA_DB_IMPL=" + s.backend,
		"PERSIST_DIRECTORY=" + s.persist,
		"IS_PERSISTENT=TRUE",
		"CHROMA_SERVER_HOST=" + s.host,
		"CHROMA_SERVER_HTTP_PORT=" + strconv.Itoa(s.port),
		"ANONYMIZED_TELEMETRY=" + pythonBool(s.telemetry),
	}
}

func (s Settings) String() string {
	return fmt.Sprintf("chroma(%s, %s, %s)", s.backend, s.persist, s.URL())
}

// MarshalJSON exposes the settings to the admin API.
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Backend             string `json:"chroma_db_impl"`
		PersistDirectory    string `json:"persist_directory"`
		Host                string `json:"chroma_server_host"`
		Port                int    `json:"chroma_server_http_port"`
		AnonymizedTelemetry bool   `json:"anonymized_telemetry"`
		URL                 string `json:"url"`
	}{s.backend, s.persist, s.host, s.port, s.telemetry, s.URL()})
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
