package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"runbot/internal/service"
)

// StorageStats reports object count and total bytes on the active backend.
func StorageStats(opsSvc service.StorageOpsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := opsSvc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// StorageCleanup triggers a retention sweep. An optional max_age_days query
// parameter overrides the configured default.
func StorageCleanup(opsSvc service.StorageOpsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := 0
		if raw := c.Query("max_age_days"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_MAX_AGE", "invalid max_age_days")
			}
			days = v
		}

		report, err := opsSvc.Cleanup(c.UserContext(), days)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(report)
	}
}
