package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"xerosync/internal/model"
	"xerosync/internal/service"
)

// ListJournals godoc
// @Summary  List stored journal summaries
// @Tags     journals
// @Produce  json
// @Param    limit   query     int  false  "page size"  default(10)
// @Param    offset  query     int  false  "offset"     default(0)
// @Success  200     {object}  journalListDTO
// @Failure  400     {object}  errorPayload
// @Failure  500     {object}  errorPayload
// @Router   /journals [get]
func ListJournals(svc service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newJournalListDTO(res))
	}
}

// GetJournal godoc
// @Summary      Get one journal with its lines
// @Description  Served from the snapshot store, or fetched from Xero and stored.
// @Tags         journals
// @Produce      json
// @Param        id   path      string  true  "Xero journal ID"
// @Success      200  {object}  journalDTO
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Failure      502  {object}  errorPayload
// @Router       /journals/{id} [get]
func GetJournal(svc service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		j, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		lines, err := j.JournalLines(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(newJournalDTO(j, lines))
	}
}

// GetJournalLines godoc
// @Summary  Get the lines of one journal
// @Tags     journals
// @Produce  json
// @Param    id   path      string  true  "Xero journal ID"
// @Success  200  {object}  linesDTO
// @Failure  400  {object}  errorPayload
// @Failure  404  {object}  errorPayload
// @Router   /journals/{id}/lines [get]
func GetJournalLines(svc service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		lines, err := svc.Lines(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(linesDTO{JournalID: id, Lines: lines})
	}
}

// SyncJournals godoc
// @Summary      Pull journals from Xero into the snapshot store
// @Description  since accepts a date (2006-01-02) or an RFC 3339 timestamp. Without it every journal is pulled.
// @Tags         journals
// @Produce      json
// @Param        since  query     string  false  "modified since"
// @Success      200    {object}  syncDTO
// @Failure      400    {object}  errorPayload
// @Failure      502    {object}  errorPayload
// @Router       /journals/sync [post]
func SyncJournals(svc service.JournalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		since, err := parseSince(c.Query("since"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SINCE", "since must be a date or RFC 3339 timestamp")
		}

		res, err := svc.Sync(c.UserContext(), since)
		if err != nil {
			return writeServiceError(c, err)
		}

		out := syncDTO{Fetched: res.Fetched, Saved: res.Saved}
		if !since.IsZero() {
			out.Since = since.Format(time.RFC3339)
		}
		return c.JSON(out)
	}
}

func parseSince(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return model.ParseDate(s)
}
