package web

import (
	"fmt"

	"dispatchbase/internal/models"
	"dispatchbase/internal/service"
	"dispatchbase/internal/validation"
)

func stateOptions() ([]option, error) {
	codes := validation.StateCodes()
	opts := make([]option, len(codes))
	for i, code := range codes {
		opts[i] = option{Value: code, Label: code + " - " + validation.States[code]}
	}
	return opts, nil
}

func customerOptions(svc *service.Registry) func() ([]option, error) {
	return func() ([]option, error) {
		rows, err := svc.Customers.GetAll()
		if err != nil {
			return nil, err
		}
		opts := make([]option, len(rows))
		for i, c := range rows {
			opts[i] = option{Value: formatUint(c.ID), Label: svc.Customers.FormatDisplayName(c)}
		}
		return opts, nil
	}
}

// locationOptions lists locations by name, keeping those accepted by keep.
func locationOptions(svc *service.Registry, keep func(models.LocationType) bool) func() ([]option, error) {
	return func() ([]option, error) {
		rows, err := svc.Locations.GetAllByName()
		if err != nil {
			return nil, err
		}
		var opts []option
		for _, l := range rows {
			if keep(l.LocationType) {
				opts = append(opts, option{Value: formatUint(l.ID), Label: l.Name})
			}
		}
		return opts, nil
	}
}

func coronerOptions(svc *service.Registry) func() ([]option, error) {
	return func() ([]option, error) {
		rows, err := svc.Coroners.GetAll()
		if err != nil {
			return nil, err
		}
		opts := make([]option, len(rows))
		for i, c := range rows {
			name := svc.Coroners.FormatDisplayName(c)
			opts[i] = option{Value: name, Label: name}
		}
		return opts, nil
	}
}

func pouchOptions(svc *service.Registry) func() ([]option, error) {
	return func() ([]option, error) {
		rows, err := svc.Pouches.GetAll()
		if err != nil {
			return nil, err
		}
		opts := make([]option, len(rows))
		for i, p := range rows {
			opts[i] = option{Value: p.PouchType, Label: p.PouchType}
		}
		return opts, nil
	}
}

func driverOptions(svc *service.Registry) func() ([]option, error) {
	return func() ([]option, error) {
		rows, err := svc.Users.GetDrivers()
		if err != nil {
			return nil, err
		}
		opts := make([]option, len(rows))
		for i, u := range rows {
			opts[i] = option{Value: formatUint(u.ID), Label: u.FullName}
		}
		return opts, nil
	}
}

func userOptions(svc *service.Registry) func() ([]option, error) {
	return func() ([]option, error) {
		rows, err := svc.Users.GetAll()
		if err != nil {
			return nil, err
		}
		opts := make([]option, len(rows))
		for i, u := range rows {
			opts[i] = option{Value: formatUint(u.ID), Label: fmt.Sprintf("%s (%s)", u.FullName, u.Username)}
		}
		return opts, nil
	}
}
