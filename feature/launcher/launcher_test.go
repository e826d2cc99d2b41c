package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chroma-launcher/core/chroma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func found(binary string) (*chroma.Application, error) {
	return &chroma.Application{}, nil
}

func newTestLauncher(t *testing.T, dataDir string, locate LocateFunc) (*Launcher, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := chroma.Config{DataDir: dataDir, Binary: "chroma", ReadyTimeoutSeconds: 1}
	return New(cfg, zap.New(core), WithLocator(locate)), logs
}

func messages(logs *observer.ObservedLogs) []string {
	var out []string
	for _, e := range logs.AllUntimed() {
		out = append(out, e.Message)
	}
	return out
}

func successSequence(dir string) []string {
	return []string{
		"正在启动Chroma向量数据库...",
		"数据目录: " + dir,
		"服务器地址: http://127.0.0.1:8000",
		"✅ Chroma服务器启动成功!",
	}
}

func TestStart_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x", "chroma-data")
	l, logs := newTestLauncher(t, dir, found)

	res, err := l.Start()
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, dir, res.Settings.PersistDirectory())
	assert.Equal(t, successSequence(dir), messages(logs))
	assert.Equal(t, PhaseStarted, l.State().Phase)
}

func TestStart_ExistingDirectoryUntouched(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "chroma.sqlite3")
	require.NoError(t, os.WriteFile(marker, []byte("state"), 0o644))

	l, _ := newTestLauncher(t, dir, found)
	_, err := l.Start()
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "state", string(data))
}

func TestStart_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chroma-data")

	first, firstLogs := newTestLauncher(t, dir, found)
	_, err := first.Start()
	require.NoError(t, err)

	second, secondLogs := newTestLauncher(t, dir, found)
	_, err = second.Start()
	require.NoError(t, err)

	assert.Equal(t, messages(firstLogs), messages(secondLogs))
}

func TestStart_FixedSettings(t *testing.T) {
	t.Setenv("CHROMA_SERVER_HTTP_PORT", "1234")
	t.Setenv("ANONYMIZED_TELEMETRY", "True")

	l, _ := newTestLauncher(t, t.TempDir(), found)
	res, err := l.Start()
	require.NoError(t, err)

	assert.Equal(t, chroma.DefaultPort, res.Settings.Port())
	assert.Equal(t, chroma.DefaultHost, res.Settings.Host())
	assert.False(t, res.Settings.AnonymizedTelemetry())
	assert.Equal(t, chroma.BackendDuckDBParquet, res.Settings.Backend())
}

func TestStart_RelativeDirectoryIsResolved(t *testing.T) {
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	l, _ := newTestLauncher(t, "chroma-data", found)
	res, err := l.Start()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(res.Settings.PersistDirectory()))
}

func TestStart_DirectoryCreationDenied(t *testing.T) {
	// A regular file in the path fails even for root
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	dir := filepath.Join(blocker, "chroma-data")

	l, logs := newTestLauncher(t, dir, found)
	res, err := l.Start()
	require.Error(t, err)
	assert.Nil(t, res)

	var serr *StartupError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageDirectory, serr.Stage)

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).AllUntimed()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "❌ Chroma服务器启动失败")
	assert.Contains(t, errs[0].Message, serr.Err.Error())
	assert.Equal(t, "directory", errs[0].ContextMap()["stage"])

	assert.Empty(t, logs.FilterMessage("✅ Chroma服务器启动成功!").AllUntimed())
	assert.Equal(t, PhaseFailed, l.State().Phase)
}

func TestStart_EmptyDirectory(t *testing.T) {
	l, _ := newTestLauncher(t, "", found)
	_, err := l.Start()

	var serr *StartupError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageDirectory, serr.Stage)
}

func TestStart_LocateFailure(t *testing.T) {
	notFound := errors.New(`exec: "chroma": executable file not found in $PATH`)
	l, logs := newTestLauncher(t, t.TempDir(), func(string) (*chroma.Application, error) {
		return nil, notFound
	})

	_, err := l.Start()
	require.ErrorIs(t, err, notFound)

	var serr *StartupError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageLocate, serr.Stage)

	msgs := messages(logs)
	require.Len(t, msgs, 4)
	assert.Equal(t, "正在启动Chroma向量数据库...", msgs[0])
	assert.Contains(t, msgs[3], "executable file not found")
	assert.Contains(t, l.State().LastError, notFound.Error())
}

func TestStart_DefaultLocator(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	cfg := chroma.Config{DataDir: t.TempDir(), Binary: "chroma-binary-that-does-not-exist"}

	_, err := New(cfg, zap.New(core)).Start()
	var serr *StartupError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageLocate, serr.Stage)
}
