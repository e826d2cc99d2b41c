// Package status reports the launcher and the served Chroma process on the
// admin API.
//
// # HTTP Endpoints
//
//   - GET /status : Launcher state (phase, pid, settings, timestamps).
//   - GET /status/heartbeat : Proxies the Chroma heartbeat.
package status

import (
	"chroma-launcher/core/chroma"
	"chroma-launcher/core/logger"
	"chroma-launcher/feature/launcher"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StateProvider is implemented by *launcher.Launcher.
type StateProvider interface {
	State() launcher.State
}

// Feature serves the status routes.
type Feature struct {
	state  StateProvider
	client *chroma.Client
	logger *zap.Logger
}

// NewFeature creates the status feature.
func NewFeature(state StateProvider, client *chroma.Client, logger *zap.Logger) *Feature {
	return &Feature{state: state, client: client, logger: logger}
}

func (f *Feature) Name() string    { return "status" }
func (f *Feature) IsEnabled() bool { return f.state != nil }

// Load registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	group := app.Group("/status")
	group.Get("/", f.HandleStatus)
	group.Get("/heartbeat", f.HandleHeartbeat)
	return nil
}

// HandleStatus returns the launcher state.
// @Summary Launcher Status
// @Tags status
// @Produce json
// @Success 200 {object} launcher.State
// @Router /status [get]
func (f *Feature) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(f.state.State())
}

// HandleHeartbeat proxies the Chroma heartbeat.
// @Summary Chroma Heartbeat
// @Tags status
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 502 {object} map[string]string
// @Router /status/heartbeat [get]
func (f *Feature) HandleHeartbeat(c *fiber.Ctx) error {
	ns, err := f.client.Heartbeat()
	if err != nil {
		logger.WithRayID(f.logger, c).Warn("Chroma heartbeat failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"nanosecond heartbeat": ns})
}
