package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"docstatus/internal/doclist"
	"docstatus/internal/logger"
	"docstatus/internal/model"
	"docstatus/internal/service"
)

// ViewHandler serves server-side document list views kept in a registry.
type ViewHandler struct {
	svc      service.DocumentService
	views    *doclist.Registry
	metrics  *doclist.Metrics
	log      logrus.FieldLogger
	pageSize int
}

// NewViewHandler creates a ViewHandler. Views load at most pageSize documents.
func NewViewHandler(svc service.DocumentService, views *doclist.Registry, metrics *doclist.Metrics, log logrus.FieldLogger, pageSize int) *ViewHandler {
	if pageSize <= 0 {
		pageSize = 500
	}
	if log == nil {
		log = logger.Discard()
	}
	return &ViewHandler{svc: svc, views: views, metrics: metrics, log: log, pageSize: pageSize}
}

type createViewRequest struct {
	Sort       string `json:"sort"`
	Descending *bool  `json:"descending"`
}

type createViewResponse struct {
	ID   string           `json:"id"`
	View doclist.Snapshot `json:"view"`
}

// writeViewError translates list view errors.
func writeViewError(c *fiber.Ctx, err error) error {
	var aerr *doclist.ActionError
	switch {
	case errors.Is(err, doclist.ErrUnknownColumn):
		return writeError(c, fiber.StatusNotFound, "UNKNOWN_COLUMN", "unknown column")
	case errors.Is(err, doclist.ErrUnknownRecord):
		return writeError(c, fiber.StatusNotFound, "UNKNOWN_RECORD", "record not in view")
	case errors.Is(err, doclist.ErrNoPendingDelete):
		return writeError(c, fiber.StatusConflict, "NO_PENDING_DELETE", "no delete awaiting confirmation")
	case errors.Is(err, doclist.ErrViewClosed):
		return writeError(c, fiber.StatusGone, "VIEW_CLOSED", "view closed")
	case errors.As(err, &aerr) && errors.Is(aerr.Err, doclist.ErrNoCollaborator):
		return writeError(c, fiber.StatusNotImplemented, "ACTION_UNAVAILABLE", "action not configured")
	case errors.As(err, &aerr) && aerr.Status == "404":
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.As(err, &aerr):
		return writeError(c, fiber.StatusBadGateway, "ACTION_FAILED", aerr.Op+" failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// view resolves :vid, writing the 404 itself when the view is gone.
func (h *ViewHandler) view(c *fiber.Ctx) (*doclist.View, bool) {
	v, ok := h.views.Get(c.Params("vid"))
	if !ok {
		_ = writeError(c, fiber.StatusNotFound, "VIEW_NOT_FOUND", "view not found")
		return nil, false
	}
	return v, true
}

// Create builds a view over the current documents.
//
// @Summary  Create a document list view
// @Tags     views
// @Accept   json
// @Produce  json
// @Param    body body createViewRequest false "initial sort column key and direction"
// @Success  201 {object} createViewResponse
// @Failure  400 {object} errorPayload
// @Router   /views [post]
func (h *ViewHandler) Create(c *fiber.Ctx) error {
	var req createViewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
	}

	log := logger.FromContext(c.UserContext(), h.log)
	opts := doclist.Options{Logger: log, Metrics: h.metrics}
	if req.Sort != "" {
		if _, ok := doclist.ColumnByKey(req.Sort); !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SORT", "unknown column")
		}
		state := doclist.SortState{Key: req.Sort, Descending: true}
		if req.Descending != nil {
			state.Descending = *req.Descending
		}
		opts.Sort = &state
	}

	v, err := service.NewView(c.UserContext(), h.svc, h.pageSize, opts)
	if err != nil {
		return writeServiceError(c, err)
	}
	id := h.views.Add(v)
	log.WithFields(logrus.Fields{"component": "doclist", "view_id": id, "records": len(v.Records())}).Info("view created")

	return c.Status(fiber.StatusCreated).JSON(createViewResponse{ID: id, View: v.Snapshot()})
}

// Get renders a view.
//
// @Summary  Render a view
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Success  200 {object} doclist.Snapshot
// @Failure  404 {object} errorPayload
// @Router   /views/{vid} [get]
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	v, ok := h.view(c)
	if !ok {
		return nil
	}
	return c.JSON(v.Snapshot())
}

// Close tears a view down.
//
// @Summary  Close a view
// @Tags     views
// @Param    vid path string true "view id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /views/{vid} [delete]
func (h *ViewHandler) Close(c *fiber.Ctx) error {
	if !h.views.Remove(c.Params("vid")) {
		return writeError(c, fiber.StatusNotFound, "VIEW_NOT_FOUND", "view not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ActivateColumn sorts by a column, toggling direction when it is already active.
//
// @Summary  Activate a column header
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Param    key path string true "column key"
// @Success  200 {object} doclist.Snapshot
// @Failure  404 {object} errorPayload
// @Router   /views/{vid}/columns/{key} [post]
func (h *ViewHandler) ActivateColumn(c *fiber.Ctx) error {
	v, ok := h.view(c)
	if !ok {
		return nil
	}
	if err := v.ActivateColumn(c.Params("key")); err != nil {
		return writeViewError(c, err)
	}
	return c.JSON(v.Snapshot())
}

// rowAction runs fn against the record named by :key.
func (h *ViewHandler) rowAction(c *fiber.Ctx, status int, fn func(ctx context.Context, v *doclist.View, key string) error) error {
	v, ok := h.view(c)
	if !ok {
		return nil
	}
	if err := fn(c.UserContext(), v, c.Params("key")); err != nil {
		return writeViewError(c, err)
	}
	return c.Status(status).JSON(v.Snapshot())
}

func withRecord(v *doclist.View, key string, fn func(rec model.DocumentRecord) error) error {
	rec, ok := v.Record(key)
	if !ok {
		return doclist.ErrUnknownRecord
	}
	return fn(rec)
}

// InvokeRow targets a row.
//
// @Summary  Invoke a row
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Param    key path string true "record key"
// @Success  200 {object} doclist.Snapshot
// @Router   /views/{vid}/rows/{key}/invoke [post]
func (h *ViewHandler) InvokeRow(c *fiber.Ctx) error {
	return h.rowAction(c, fiber.StatusOK, func(_ context.Context, v *doclist.View, key string) error {
		return withRecord(v, key, func(rec model.DocumentRecord) error {
			v.Invoke(rec)
			return nil
		})
	})
}

// DeleteRow deletes the row's document immediately.
//
// @Summary  Delete a row
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Param    key path string true "record key"
// @Success  200 {object} doclist.Snapshot
// @Failure  502 {object} errorPayload
// @Router   /views/{vid}/rows/{key} [delete]
func (h *ViewHandler) DeleteRow(c *fiber.Ctx) error {
	return h.rowAction(c, fiber.StatusOK, func(ctx context.Context, v *doclist.View, key string) error {
		return withRecord(v, key, func(rec model.DocumentRecord) error { return v.Delete(ctx, rec) })
	})
}

// ReindexRow submits the row's document for embedding.
//
// @Summary  Reindex a row
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Param    key path string true "record key"
// @Success  202 {object} doclist.Snapshot
// @Failure  502 {object} errorPayload
// @Router   /views/{vid}/rows/{key}/reindex [post]
func (h *ViewHandler) ReindexRow(c *fiber.Ctx) error {
	return h.rowAction(c, fiber.StatusAccepted, func(ctx context.Context, v *doclist.View, key string) error {
		return withRecord(v, key, func(rec model.DocumentRecord) error { return v.Reindex(ctx, rec) })
	})
}

// RequestDelete holds a delete for the row until confirmed or cancelled.
//
// @Summary  Request a delete confirmation
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Param    key path string true "record key"
// @Success  200 {object} doclist.Snapshot
// @Router   /views/{vid}/rows/{key}/delete-request [post]
func (h *ViewHandler) RequestDelete(c *fiber.Ctx) error {
	return h.rowAction(c, fiber.StatusOK, func(_ context.Context, v *doclist.View, key string) error {
		return v.RequestDelete(key)
	})
}

// ConfirmDelete runs the pending delete.
//
// @Summary  Confirm the pending delete
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Success  200 {object} doclist.Snapshot
// @Failure  409 {object} errorPayload
// @Router   /views/{vid}/confirm [post]
func (h *ViewHandler) ConfirmDelete(c *fiber.Ctx) error {
	v, ok := h.view(c)
	if !ok {
		return nil
	}
	if err := v.ConfirmDelete(c.UserContext()); err != nil {
		return writeViewError(c, err)
	}
	return c.JSON(v.Snapshot())
}

// CancelDelete drops the pending delete.
//
// @Summary  Cancel the pending delete
// @Tags     views
// @Produce  json
// @Param    vid path string true "view id"
// @Success  200 {object} doclist.Snapshot
// @Failure  409 {object} errorPayload
// @Router   /views/{vid}/cancel [post]
func (h *ViewHandler) CancelDelete(c *fiber.Ctx) error {
	v, ok := h.view(c)
	if !ok {
		return nil
	}
	if err := v.CancelDelete(); err != nil {
		return writeViewError(c, err)
	}
	return c.JSON(v.Snapshot())
}
