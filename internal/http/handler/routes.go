package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"xerosync/internal/service"
)

// Dependencies are what the routes need. A nil Gatherer skips /metrics.
type Dependencies struct {
	DB          *sql.DB
	Gatherer    prometheus.Gatherer
	Journals    service.JournalService
	Attachments service.AttachmentService
}

// RegisterRoutes attaches every HTTP route to app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())
	if deps.Gatherer != nil {
		app.Get("/metrics", Metrics(deps.Gatherer))
	}

	journals := app.Group("/journals")
	journals.Get("/", ListJournals(deps.Journals))
	journals.Post("/sync", SyncJournals(deps.Journals))
	journals.Get("/:id", GetJournal(deps.Journals))
	journals.Get("/:id/lines", GetJournalLines(deps.Journals))

	attachments := app.Group("/attachments")
	attachments.Post("/:endpoint/:guid", ArchiveAttachments(deps.Attachments))
	attachments.Get("/:id/:file", DownloadAttachment(deps.Attachments))
	attachments.Delete("/:id/:file", DeleteAttachment(deps.Attachments))
	attachments.Get("/:id/:file/link", AttachmentLink(deps.Attachments))
}
