package audit_test

import (
	"encoding/json"
	"testing"

	"dispatchbase/internal/audit"
	"dispatchbase/internal/models"
	"dispatchbase/internal/testutil"
)

func TestWriteAndListLogs(t *testing.T) {
	w := audit.NewWriter(testutil.OpenDB(t))

	before := models.Customer{ID: 3, CompanyName: "Acme"}
	after := models.Customer{ID: 3, CompanyName: "Acme Corp"}
	if err := w.WriteLog(audit.LogOptions{EntityType: "customer", EntityID: 3, Action: models.AuditActionUpdate, Before: before, After: after}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.WriteLog(audit.LogOptions{EntityType: "pouch", EntityID: 1, Action: models.AuditActionCreate, After: models.Pouch{ID: 1, PouchType: "Standard"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	logs, err := w.List(audit.Filter{EntityType: "customer"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != models.AuditActionUpdate {
		t.Fatalf("unexpected logs: %+v", logs)
	}

	var got models.Customer
	if err := json.Unmarshal(logs[0].AfterData, &got); err != nil {
		t.Fatalf("decode after: %v", err)
	}
	if got.CompanyName != "Acme Corp" {
		t.Fatalf("after snapshot: %+v", got)
	}

	all, err := w.List(audit.Filter{})
	if err != nil || len(all) != 2 || all[0].EntityType != "pouch" {
		t.Fatalf("newest first: %+v %v", all, err)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	var w *audit.Writer
	if err := w.WriteLog(audit.LogOptions{EntityType: "customer"}); err != nil {
		t.Fatalf("nil writer: %v", err)
	}
}
