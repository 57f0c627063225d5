package api

import (
	"errors"
	"strings"

	"dispatchbase/internal/service"
	"dispatchbase/internal/store"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type TransportListResponse struct {
	Data     []store.TransportRow `json:"data"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Total    int64                `json:"total"`
}

// ListTransportsHandler pages through transports newest first, optionally
// filtered by search.
func ListTransportsHandler(transports *service.TransportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}
		size := c.QueryInt("pageSize", defaultPageSize)
		if size < 1 {
			size = defaultPageSize
		}
		if size > maxPageSize {
			size = maxPageSize
		}
		search := strings.TrimSpace(c.Query("search"))
		offset := (page - 1) * size

		var (
			rows  []store.TransportRow
			total int64
			err   error
		)
		if search == "" {
			if total, err = transports.GetCount(); err == nil {
				rows, err = transports.GetPaginated(size, offset)
			}
		} else {
			if total, err = transports.GetCountBySearch(search); err == nil {
				rows, err = transports.SearchPaginated(search, size, offset)
			}
		}
		if err != nil {
			return err
		}
		if rows == nil {
			rows = []store.TransportRow{}
		}

		return c.JSON(TransportListResponse{Data: rows, Page: page, PageSize: size, Total: total})
	}
}

// GetTransportHandler returns one transport with its decedent and charges.
func GetTransportHandler(transports *service.TransportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid transport id")
		}
		agg, err := transports.Find(uint(id))
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Transport not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(agg)
	}
}
