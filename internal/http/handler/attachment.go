package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"xerosync/internal/service"
)

// ArchiveAttachments godoc
// @Summary  Archive every attachment of a Xero document
// @Tags     attachments
// @Produce  json
// @Param    endpoint  path      string  true  "document type, e.g. Invoices"
// @Param    guid      path      string  true  "document ID"
// @Success  201       {array}   objectDTO
// @Failure  400       {object}  errorPayload
// @Failure  404       {object}  errorPayload
// @Failure  502       {object}  errorPayload
// @Router   /attachments/{endpoint}/{guid} [post]
func ArchiveAttachments(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		guid := c.Params("guid")
		if _, err := uuid.Parse(guid); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		infos, err := svc.Archive(c.UserContext(), c.Params("endpoint"), guid)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(newObjectDTOs(infos))
	}
}

// DownloadAttachment godoc
// @Summary  Stream an archived attachment
// @Tags     attachments
// @Produce  octet-stream
// @Param    id    path  string  true  "attachment ID"
// @Param    file  path  string  true  "file name"
// @Success  200
// @Failure  404  {object}  errorPayload
// @Router   /attachments/{id}/{file} [get]
func DownloadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("id"), c.Params("file"))
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Attachment(c.Params("file"))
		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)

		// fasthttp closes the stream once the body is written.
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}

// AttachmentLink godoc
// @Summary  Presigned download URL for an archived attachment
// @Tags     attachments
// @Produce  json
// @Param    id    path      string  true  "attachment ID"
// @Param    file  path      string  true  "file name"
// @Success  200   {object}  linkDTO
// @Failure  400   {object}  errorPayload
// @Router   /attachments/{id}/{file}/link [get]
func AttachmentLink(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Link(c.UserContext(), c.Params("id"), c.Params("file"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(linkDTO{URL: u})
	}
}

// DeleteAttachment godoc
// @Summary  Remove an archived attachment
// @Tags     attachments
// @Param    id    path  string  true  "attachment ID"
// @Param    file  path  string  true  "file name"
// @Success  204
// @Failure  404  {object}  errorPayload
// @Router   /attachments/{id}/{file} [delete]
func DeleteAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Remove(c.UserContext(), c.Params("id"), c.Params("file")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
