package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docstatus/internal/repository"
	"docstatus/internal/service"
)

// parseDocumentID validates the :id route parameter.
func parseDocumentID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// ListDocuments returns a page of documents.
//
// @Summary  List documents
// @Tags     documents
// @Produce  json
// @Param    limit  query int    false "page size"   default(10)
// @Param    offset query int    false "page offset" default(0)
// @Param    sort   query string false "filename, file_type, state, created_at or updated_at" default(updated_at)
// @Param    order  query string false "asc or desc" default(desc)
// @Success  200 {object} service.DocumentListResult
// @Failure  400 {object} errorPayload
// @Router   /documents [get]
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		field := repository.SortField(c.Query("sort", string(repository.SortByUpdatedAt)))
		if !field.Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SORT", "invalid sort field")
		}
		var desc bool
		switch strings.ToLower(c.Query("order", "desc")) {
		case "desc":
			desc = true
		case "asc":
		default:
			return writeError(c, fiber.StatusBadRequest, "INVALID_ORDER", "order must be asc or desc")
		}

		res, err := svc.List(c.UserContext(), service.ListOptions{
			Limit:      limit,
			Offset:     offset,
			SortField:  field,
			Descending: desc,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadDocument stores a multipart upload (field "file").
//
// @Summary  Upload a document
// @Tags     documents
// @Accept   mpfd
// @Produce  json
// @Param    file formData file true "document"
// @Success  201 {object} model.Document
// @Failure  400 {object} errorPayload
// @Router   /documents [post]
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns one document.
//
// @Summary  Get a document
// @Tags     documents
// @Produce  json
// @Param    id path string true "document id"
// @Success  200 {object} model.Document
// @Failure  404 {object} errorPayload
// @Router   /documents/{id} [get]
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseDocumentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document and its content.
//
// @Summary  Delete a document
// @Tags     documents
// @Param    id path string true "document id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /documents/{id} [delete]
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseDocumentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ReindexDocument submits a document for embedding.
//
// @Summary  Reindex a document
// @Tags     documents
// @Produce  json
// @Param    id path string true "document id"
// @Success  202 {object} model.Document
// @Failure  404 {object} errorPayload
// @Failure  503 {object} errorPayload
// @Router   /documents/{id}/reindex [post]
func ReindexDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseDocumentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Reindex(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(doc)
	}
}

// DocumentURL returns a presigned download URL.
//
// @Summary  Presigned download URL
// @Tags     documents
// @Produce  json
// @Param    id path string true "document id"
// @Success  200 {object} map[string]string
// @Failure  404 {object} errorPayload
// @Router   /documents/{id}/url [get]
func DocumentURL(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseDocumentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.BlobURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// DocumentContent streams the stored file.
//
// @Summary  Download a document
// @Tags     documents
// @Produce  octet-stream
// @Param    id path string true "document id"
// @Success  200 {file} file
// @Failure  404 {object} errorPayload
// @Router   /documents/{id}/content [get]
func DocumentContent(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseDocumentID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rc, doc, err := svc.Content(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		if doc.ContentType != "" {
			c.Set(fiber.HeaderContentType, doc.ContentType)
		}
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", doc.Filename))
		size := -1
		if doc.Size > 0 {
			size = int(doc.Size)
		}
		return c.SendStream(rc, size)
	}
}
