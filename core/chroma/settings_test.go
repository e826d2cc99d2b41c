package chroma_test

import (
	"encoding/json"
	"testing"

	"chroma-launcher/core/chroma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettings(t *testing.T) {
	s, err := chroma.NewSettings("/tmp/x/chroma-data")
	require.NoError(t, err)

	assert.Equal(t, chroma.BackendDuckDBParquet, s.Backend())
	assert.Equal(t, "/tmp/x/chroma-data", s.PersistDirectory())
	assert.Equal(t, "127.0.0.1", s.Host())
	assert.Equal(t, 8000, s.Port())
	assert.False(t, s.AnonymizedTelemetry())
	assert.Equal(t, "127.0.0.1:8000", s.Addr())
	assert.Equal(t, "http://127.0.0.1:8000", s.URL())
	assert.Equal(t, chroma.DefaultURL(), s.URL())
}

func TestNewSettings_EmptyDirectory(t *testing.T) {
	_, err := chroma.NewSettings("")
	assert.ErrorIs(t, err, chroma.ErrEmptyPersistDirectory)
}

func TestSettings_FixedRegardlessOfEnvironment(t *testing.T) {
	t.Setenv("CHROMA_SERVER_HTTP_PORT", "9999")
	t.Setenv("CHROMA_SERVER_HOST", "0.0.0.0")
	t.Setenv("ANONYMIZED_TELEMETRY", "True")

	s, err := chroma.NewSettings("/data")
	require.NoError(t, err)
	assert.Equal(t, chroma.DefaultPort, s.Port())
	assert.Equal(t, chroma.DefaultHost, s.Host())
	assert.False(t, s.AnonymizedTelemetry())
}

func TestSettings_ArgsAndEnviron(t *testing.T) {
	s, err := chroma.NewSettings("/data")
	require.NoError(t, err)

	assert.Equal(t, []string{"run", "--path", "/data", "--host", "127.0.0.1", "--port", "8000"}, s.Args())
	assert.ElementsMatch(t, []string{
		"CHROMA_DB_IMPL=duckdb+parquet",
		"PERSIST_DIRECTORY=/data",
		"IS_PERSISTENT=TRUE",
		"CHROMA_SERVER_HOST=127.0.0.1",
		"CHROMA_SERVER_HTTP_PORT=8000",
		"ANONYMIZED_TELEMETRY=False",
	}, s.Environ())
}

func TestSettings_MarshalJSON(t *testing.T) {
	s, err := chroma.NewSettings("/data")
	require.NoError(t, err)

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "duckdb+parquet", body["chroma_db_impl"])
	assert.Equal(t, "/data", body["persist_directory"])
	assert.Equal(t, float64(8000), body["chroma_server_http_port"])
	assert.Equal(t, false, body["anonymized_telemetry"])
	assert.Equal(t, "http://127.0.0.1:8000", body["url"])
}
