package web

import (
	"errors"
	"strconv"

	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func ratesSpecs(svc *service.Registry) []fieldSpec {
	return []fieldSpec{
		{name: "customer_id", label: "Select Customer", kind: "select", options: customerOptions(svc)},
		{name: "basic_fee", label: "Basic Removal Fee", kind: "number", step: "0.01", required: true},
		{name: "included_miles", label: "Miles Covered by Basic Removal", kind: "number", required: true},
		{name: "extra_mile_rate", label: "Per-Mile Overage Rate", kind: "number", step: "0.01", required: true},
		{name: "assistant_fee", label: "Assistant Fee", kind: "number", step: "0.01", required: true},
		{name: "effective_date", label: "Effective Date", kind: "date", required: true},
		{name: "notes", label: "Notes", kind: "textarea"},
	}
}

func rateValues(r *models.Rate) values {
	v := values{
		"customer_id":     formatUintPtr(r.CustomerID),
		"basic_fee":       formatFloat(r.BasicFee),
		"included_miles":  strconv.Itoa(r.IncludedMiles),
		"extra_mile_rate": formatFloat(r.ExtraMileRate),
		"assistant_fee":   formatFloat(r.AssistantFee),
		"effective_date":  r.EffectiveDate,
	}
	if r.Notes != nil {
		v["notes"] = *r.Notes
	}
	return v
}

func rateFromValues(v values) models.Rate {
	basic, _ := strconv.ParseFloat(v["basic_fee"], 64)
	miles, _ := strconv.Atoi(v["included_miles"])
	extra, _ := strconv.ParseFloat(v["extra_mile_rate"], 64)
	assistant, _ := strconv.ParseFloat(v["assistant_fee"], 64)
	r := models.Rate{
		BasicFee:      basic,
		IncludedMiles: miles,
		ExtraMileRate: extra,
		AssistantFee:  assistant,
		EffectiveDate: v["effective_date"],
		CustomerID:    parseUintPtr(v["customer_id"]),
	}
	if notes := v["notes"]; notes != "" {
		r.Notes = &notes
	}
	return r
}

// RatesHandler serves the fee schedule form. Without a customer the canonical
// row is edited; with one, that customer's override. GET with
// action=get_rates answers JSON for the customer picker. A delete targets the
// row selected by the customer_id query parameter.
func RatesHandler(svc *service.Registry) fiber.Handler {
	specs := ratesSpecs(svc)
	rates := svc.Rates

	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet && c.Query("action") == "get_rates" {
			return ratesJSON(c, rates)
		}

		view := formView{
			Title:     "Rates",
			Heading:   "Manage Transport Fees",
			Mode:      modeEdit,
			Action:    c.OriginalURL(),
			BackLink:  "/transport-list",
			ShowForm:  true,
			CSRFToken: csrfToken(c),
		}
		var (
			v       values
			invalid map[string]string
		)

		switch {
		case c.Method() == fiber.MethodPost && c.FormValue("delete_rates") != "":
			existing, err := rates.Find(parseUintPtr(c.Query("customer_id")))
			switch {
			case errors.Is(err, store.ErrNotFound):
				view.Error = "No rates to delete."
			case err != nil:
				return err
			default:
				if _, err := rates.Delete(existing.ID); err != nil {
					logrus.WithError(err).WithField("rates_id", existing.ID).Error("delete rates failed")
					view.Error = "Error deleting rates."
					break
				}
				view.Success = "Rates deleted successfully!"
			}
			v = values{}

		case c.Method() == fiber.MethodPost:
			v = parseValues(c, specs)
			msg, field := validation.ValidateRatesFields(validation.RatesInput{
				BasicFee:      v["basic_fee"],
				IncludedMiles: v["included_miles"],
				ExtraMileRate: v["extra_mile_rate"],
				AssistantFee:  v["assistant_fee"],
				EffectiveDate: v["effective_date"],
			})
			if msg != "" {
				view.Error = msg
				if field == "" {
					invalid = missingRequired(specs, v, validation.MsgFillField)
				} else {
					invalid = map[string]string{field: msg}
				}
				break
			}

			r := rateFromValues(v)
			_, findErr := rates.Find(r.CustomerID)
			if err := rates.Save(&r); err != nil {
				logrus.WithError(err).Error("save rates failed")
				view.Error = "Error saving rates."
				break
			}
			if findErr == nil {
				view.Success = "Rates updated successfully!"
			} else {
				view.Success = "Rates saved successfully!"
			}
			v = values{}

		default:
			customerID := parseUintPtr(c.Query("customer_id"))
			r, err := rates.Find(customerID)
			switch {
			case err == nil:
				v = rateValues(r)
				view.DeleteField = "delete_rates"
			case errors.Is(err, store.ErrNotFound):
				v = values{"customer_id": formatUintPtr(customerID)}
			default:
				return err
			}
		}

		fields, err := buildFields(specs, v, invalid)
		if err != nil {
			return err
		}
		view.Fields = fields
		return c.Render("form", view, "layout")
	}
}

func ratesJSON(c *fiber.Ctx, rates *service.RatesService) error {
	n, err := strconv.ParseUint(c.Query("customer_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer_id"})
	}
	id := uint(n)
	r, err := rates.Find(&id)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No rates found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": r})
}
