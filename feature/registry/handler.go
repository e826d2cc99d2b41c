package registry

import (
	"chroma-launcher/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature exposes launch history on the admin API.
type Feature struct {
	service *Service
	logger  *zap.Logger
}

// NewFeature creates the registry feature. A nil service disables it.
func NewFeature(service *Service, logger *zap.Logger) *Feature {
	return &Feature{service: service, logger: logger}
}

func (f *Feature) Name() string    { return "registry" }
func (f *Feature) IsEnabled() bool { return f.service != nil }

// Load registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/launches", f.HandleRecent)
	return nil
}

// HandleRecent lists recent launches.
// @Summary Launch History
// @Tags registry
// @Produce json
// @Param limit query int false "Maximum records"
// @Success 200 {array} registry.LaunchRecord
// @Failure 500 {object} map[string]string
// @Router /launches [get]
func (f *Feature) HandleRecent(c *fiber.Ctx) error {
	records, err := f.service.Recent(c.Context(), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		logger.WithRayID(f.logger, c).Error("Failed to list launches", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}
