package web

import (
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"
)

func employeeSpecs(svc *service.Registry) []fieldSpec {
	return []fieldSpec{
		{name: "user_id", label: "User", kind: "select", required: true, options: userOptions(svc)},
		{name: "job_title", label: "Job Title", kind: "text", required: true},
		{name: "salary", label: "Salary", kind: "number", step: "0.01"},
		{name: "employment_type", label: "Employment Type", kind: "select", required: true, options: staticOptions(models.EmploymentTypes...)},
		{name: "start_date", label: "Start Date", kind: "date", required: true},
		{name: "end_date", label: "End Date", kind: "date"},
		{name: "status", label: "Status", kind: "select", required: true, options: staticOptions(models.EmployeeStatuses...)},
	}
}

func validateEmployee(specs []fieldSpec) func(values, string) (string, map[string]string) {
	return func(v values, _ string) (string, map[string]string) {
		if invalid := missingRequired(specs, v, validation.MsgFillField); len(invalid) > 0 {
			return validation.MsgRequiredFields, invalid
		}
		if parseUint(v["user_id"]) == 0 {
			return "Invalid user selected.", map[string]string{"user_id": "Invalid user selected."}
		}
		if v["salary"] != "" {
			if f, ok := validation.ParseAmount(v["salary"]); !ok || f < 0 {
				msg := "Salary must be a non-negative number."
				return msg, map[string]string{"salary": msg}
			}
		}
		if !validation.IsValidDate(v["start_date"]) {
			msg := "Start date must be a valid date (Y-m-d)."
			return msg, map[string]string{"start_date": msg}
		}
		if v["end_date"] != "" {
			if !validation.IsValidDate(v["end_date"]) {
				msg := "End date must be a valid date (Y-m-d)."
				return msg, map[string]string{"end_date": msg}
			}
			if v["end_date"] < v["start_date"] {
				msg := "End date cannot be before start date."
				return msg, map[string]string{"end_date": msg}
			}
		}
		return "", nil
	}
}

func employeeForm(svc *service.Registry) *formPage {
	specs := employeeSpecs(svc)
	p := &formPage{
		entity:    "employee",
		title:     "Employee",
		listLink:  "/employee-list",
		duplicate: "An employee record already exists for this user.",
		specs:     specs,
		defaults:  func() values { return values{"status": "active"} },
		validate:  validateEmployee(specs),
	}
	bindService[models.Employee](p, svc.Employees,
		func(v values) models.Employee {
			e := models.Employee{
				UserID:         parseUint(v["user_id"]),
				JobTitle:       v["job_title"],
				EmploymentType: v["employment_type"],
				StartDate:      v["start_date"],
				EndDate:        v["end_date"],
				Status:         v["status"],
			}
			if v["salary"] != "" {
				salary, _ := validation.ParseAmount(v["salary"])
				e.Salary = &salary
			}
			return e
		},
		func(e *models.Employee) values {
			return values{
				"user_id":         formatUint(e.UserID),
				"job_title":       e.JobTitle,
				"salary":          formatFloatPtr(e.Salary),
				"employment_type": e.EmploymentType,
				"start_date":      e.StartDate,
				"end_date":        e.EndDate,
				"status":          e.Status,
			}
		},
	)
	return p
}

// employeeSource lists employees joined with their user's name.
type employeeSource struct {
	*service.EmployeeService
}

func (s employeeSource) GetPaginated(limit, offset int) ([]store.EmployeeRow, error) {
	return s.GetPaginatedWithUser(limit, offset)
}

func (s employeeSource) SearchPaginated(term string, limit, offset int) ([]store.EmployeeRow, error) {
	return s.SearchPaginatedWithUser(term, limit, offset)
}

func employeeList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Employees",
		singular: "Employee",
		editLink: "/employee-edit",
		headers:  []string{"Name", "Job Title", "Type", "Start Date", "Status"},
	}
	bindSource[store.EmployeeRow](p, employeeSource{svc.Employees}, func(e store.EmployeeRow) listRow {
		return listRow{
			Cells: []string{e.UserFullName, e.JobTitle, e.EmploymentType, e.StartDate, e.Status},
			Links: editLinks("/employee-edit", e.ID),
		}
	})
	return p
}
