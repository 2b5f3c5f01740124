package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docstatus/internal/service"
)

// RegisterRoutes attaches the ops, document and view routes to app.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, views *ViewHandler) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", ListDocuments(docSvc))
	docs.Post("/", UploadDocument(docSvc))
	docs.Get("/:id", GetDocument(docSvc))
	docs.Delete("/:id", DeleteDocument(docSvc))
	docs.Post("/:id/reindex", ReindexDocument(docSvc))
	docs.Get("/:id/url", DocumentURL(docSvc))
	docs.Get("/:id/content", DocumentContent(docSvc))

	v := app.Group("/views")
	v.Post("/", views.Create)
	v.Get("/:vid", views.Get)
	v.Delete("/:vid", views.Close)
	v.Post("/:vid/columns/:key", views.ActivateColumn)
	v.Post("/:vid/rows/:key/invoke", views.InvokeRow)
	v.Delete("/:vid/rows/:key", views.DeleteRow)
	v.Post("/:vid/rows/:key/reindex", views.ReindexRow)
	v.Post("/:vid/rows/:key/delete-request", views.RequestDelete)
	v.Post("/:vid/confirm", views.ConfirmDelete)
	v.Post("/:vid/cancel", views.CancelDelete)
}
