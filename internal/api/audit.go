package api

import (
	"dispatchbase/internal/audit"

	"github.com/gofiber/fiber/v2"
)

const maxAuditLogs = 500

// ListAuditLogsHandler returns audit entries newest first, filtered by
// entity_type, entity_id and user_id.
func ListAuditLogsHandler(log *audit.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 100)
		if limit < 1 || limit > maxAuditLogs {
			limit = maxAuditLogs
		}
		logs, err := log.List(audit.Filter{
			EntityType: c.Query("entity_type"),
			EntityID:   uint(c.QueryInt("entity_id", 0)),
			UserID:     uint(c.QueryInt("user_id", 0)),
			Limit:      limit,
		})
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": logs})
	}
}
