package chroma_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"chroma-launcher/core/chroma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the server executable")
	}

	t.Run("Found", func(t *testing.T) {
		bin := filepath.Join(t.TempDir(), "chroma")
		require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))

		app, err := chroma.Locate(bin)
		require.NoError(t, err)
		assert.Equal(t, bin, app.Path())
	})

	t.Run("Missing", func(t *testing.T) {
		app, err := chroma.Locate("chroma-binary-that-does-not-exist")
		assert.Error(t, err)
		assert.Nil(t, app)
		assert.Contains(t, err.Error(), "cannot locate server executable")
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := chroma.Locate("")
		assert.Error(t, err)
	})
}

func TestApplication_Command(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the server executable")
	}
	bin := filepath.Join(t.TempDir(), "chroma")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	app, err := chroma.Locate(bin)
	require.NoError(t, err)
	s, err := chroma.NewSettings(t.TempDir())
	require.NoError(t, err)

	cmd := app.Command(context.Background(), s)
	assert.Equal(t, append([]string{bin}, s.Args()...), cmd.Args)
	assert.Equal(t, s.PersistDirectory(), cmd.Dir)
	assert.Contains(t, cmd.Env, "ANONYMIZED_TELEMETRY=False")
	assert.NotNil(t, cmd.Cancel)
	assert.NoError(t, cmd.Run())
}
