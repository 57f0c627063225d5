package web

import (
	"dispatchbase/internal/audit"

	"github.com/gofiber/fiber/v2"
)

const auditListLimit = 200

type auditEntry struct {
	CreatedAt   string
	UserName    string
	EntityType  string
	EntityID    uint
	Action      string
	Description string
}

type auditView struct {
	Title   string
	Entries []auditEntry
}

// AuditListHandler shows the newest audit entries, optionally narrowed by
// entity_type and entity_id.
func AuditListHandler(log *audit.Writer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs, err := log.List(audit.Filter{
			EntityType: c.Query("entity_type"),
			EntityID:   uint(c.QueryInt("entity_id", 0)),
			Limit:      auditListLimit,
		})
		if err != nil {
			return err
		}
		view := auditView{Title: "Audit log", Entries: make([]auditEntry, len(logs))}
		for i, l := range logs {
			view.Entries[i] = auditEntry{
				CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
				UserName:    l.UserName,
				EntityType:  l.EntityType,
				EntityID:    l.EntityID,
				Action:      string(l.Action),
				Description: l.Description,
			}
		}
		return c.Render("audit", view, "layout")
	}
}
