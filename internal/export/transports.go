// Package export renders transport lists as Excel workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"dispatchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const transportSheet = "Transports"

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var transportHeader = []any{
	"Transport #", "Firm Date", "Account Type", "Firm", "Decedent",
	"Origin", "Destination", "Coroner", "Pouch", "Tag Number",
	"Call Time", "Departure Time", "Arrival Time", "Delivery Time",
	"Mileage", "Mileage Total", "Total Charge",
}

// Filename returns the download name for an export taken at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("transports-%s.xlsx", t.Format("20060102-150405"))
}

// Transports writes rows to a single-sheet workbook: one header row then one
// row per transport in the given order.
func Transports(rows []store.TransportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", transportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(transportSheet, "A1", &transportHeader); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, err := excelize.ColumnNumberToName(len(transportHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(transportSheet, "A1", last+"1", bold); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		line := []any{
			r.TransportID,
			r.FirmDate,
			r.AccountType,
			r.CustomerName,
			strings.TrimSpace(r.DecedentFirstName + " " + r.DecedentLastName),
			r.OriginName,
			r.DestinationName,
			r.CoronerName,
			r.PouchType,
			r.TagNumber,
			timeCell(r.CallTime),
			timeCell(r.DepartureTime),
			timeCell(r.ArrivalTime),
			timeCell(r.DeliveryTime),
			floatCell(r.Mileage),
			floatCell(r.MileageTotalCharge),
			r.TotalCharge,
		}
		if err := f.SetSheetRow(transportSheet, cell, &line); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func timeCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func floatCell(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}

// TransportSource lists transports matching a search term; empty matches all.
type TransportSource interface {
	SearchAll(term string) ([]store.TransportRow, error)
}

// TransportsHandler downloads the transport list as XLSX, filtered by the
// optional search query parameter.
func TransportsHandler(src TransportSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := src.SearchAll(strings.TrimSpace(c.Query("search")))
		if err != nil {
			return err
		}
		data, err := Transports(rows)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, ContentType)
		c.Attachment(Filename(time.Now()))
		return c.Send(data)
	}
}
