package api

import (
	"errors"
	"strconv"

	"dispatchbase/internal/service"
	"dispatchbase/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GetRatesHandler returns the customer's rates when customer_id is given and
// the canonical rates otherwise.
func GetRatesHandler(rates *service.RatesService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customerID *uint
		if raw := c.Query("customer_id"); raw != "" {
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid customer_id")
			}
			id := uint(n)
			customerID = &id
		}

		r, err := rates.Find(customerID)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No rates found")
		}
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": r})
	}
}
