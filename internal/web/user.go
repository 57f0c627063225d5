package web

import (
	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/store"
	"dispatchbase/internal/validation"
)

func roleOptions() ([]option, error) {
	opts := make([]option, len(models.UserRoles))
	for i, r := range models.UserRoles {
		opts[i] = option{Value: string(r), Label: string(r)}
	}
	return opts, nil
}

var userSpecs = []fieldSpec{
	{name: "username", label: "Username", kind: "text", required: true},
	{name: "password", label: "Password", kind: "password"},
	{name: "full_name", label: "Full Name", kind: "text", required: true},
	{name: "address", label: "Address", kind: "text"},
	{name: "city", label: "City", kind: "text"},
	{name: "state", label: "State", kind: "select", required: true, options: stateOptions},
	{name: "zip_code", label: "Zip Code", kind: "text"},
	{name: "phone_number", label: "Phone Number", kind: "tel", placeholder: "(555)555-5555"},
	{name: "role", label: "Role", kind: "select", required: true, options: roleOptions},
	{name: "is_active", label: "Active", kind: "checkbox"},
}

func validateUser(v values, mode string) (string, map[string]string) {
	invalid := missingRequired(userSpecs, v, validation.MsgFillField)
	if mode == modeAdd && v["password"] == "" {
		invalid["password"] = validation.MsgFillField
	}
	if len(invalid) > 0 {
		return validation.MsgRequiredFields, invalid
	}
	if !validation.IsValidState(v["state"]) {
		return "Invalid state selected.", map[string]string{"state": "Invalid state selected."}
	}
	if !models.UserRole(v["role"]).Valid() {
		return "Invalid role selected.", map[string]string{"role": "Invalid role selected."}
	}
	if v["phone_number"] != "" && !validation.IsValidPhone(v["phone_number"]) {
		return "Invalid phone number format.", map[string]string{"phone_number": "Invalid phone number format."}
	}
	return "", nil
}

func userFromValues(v values) models.User {
	return models.User{
		Username:    v["username"],
		FullName:    v["full_name"],
		Address:     v["address"],
		City:        v["city"],
		State:       v["state"],
		ZipCode:     v["zip_code"],
		PhoneNumber: v["phone_number"],
		Role:        models.UserRole(v["role"]),
		IsActive:    v["is_active"] == "1",
	}
}

// userForm keeps the stored password when an edit leaves the field blank.
func userForm(svc *service.Registry) *formPage {
	users := svc.Users
	return &formPage{
		entity:    "user",
		title:     "User",
		listLink:  "/user-list",
		duplicate: "A user with this username already exists.",
		specs:     userSpecs,
		defaults:  func() values { return values{"is_active": "1"} },
		validate:  validateUser,
		load: func(id uint) (values, error) {
			u, err := users.FindByID(id)
			if err != nil {
				return nil, err
			}
			return values{
				"username":     u.Username,
				"full_name":    u.FullName,
				"address":      u.Address,
				"city":         u.City,
				"state":        u.State,
				"zip_code":     u.ZipCode,
				"phone_number": u.PhoneNumber,
				"role":         string(u.Role),
				"is_active":    checkbox(u.IsActive),
			}, nil
		},
		create: func(v values) error {
			u := userFromValues(v)
			_, err := users.Create(&u, v["password"])
			return err
		},
		update: func(id uint, v values) error {
			u := userFromValues(v)
			_, err := users.Update(id, &u, v["password"])
			return err
		},
		remove: func(id uint) error {
			n, err := users.Delete(id)
			if err == nil && n == 0 {
				return store.ErrNotFound
			}
			return err
		},
	}
}

func userList(svc *service.Registry) *listPage {
	p := &listPage{
		title:    "Users",
		singular: "User",
		editLink: "/user-edit",
		headers:  []string{"Username", "Full Name", "City", "State", "Role", "Active"},
	}
	bindSource[models.User](p, svc.Users, func(u models.User) listRow {
		active := "No"
		if u.IsActive {
			active = "Yes"
		}
		return listRow{
			Cells: []string{u.Username, u.FullName, u.City, u.State, string(u.Role), active},
			Links: editLinks("/user-edit", u.ID),
		}
	})
	return p
}
