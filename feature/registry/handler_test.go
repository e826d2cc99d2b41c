package registry

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleRecent(t *testing.T) {
	svc := newTestService(t)
	for i := 0; i < 3; i++ {
		_, err := svc.RecordStart(context.Background(), "chroma", "/data", false, testResult(t), nil)
		require.NoError(t, err)
	}

	f := NewFeature(svc, zap.NewNop())
	require.True(t, f.IsEnabled())
	app := fiber.New()
	require.NoError(t, f.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/launches?limit=2", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []LaunchRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)
}

func TestFeature_DisabledWithoutService(t *testing.T) {
	assert.False(t, NewFeature(nil, zap.NewNop()).IsEnabled())
}
