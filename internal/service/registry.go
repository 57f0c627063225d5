package service

import (
	"dispatchbase/internal/audit"
	"dispatchbase/internal/store"

	"gorm.io/gorm"
)

// Registry bundles every service over one database handle.
type Registry struct {
	Customers  *CustomerService
	Locations  *LocationService
	Coroners   *CoronerService
	Pouches    *PouchService
	Users      *UserService
	Employees  *EmployeeService
	Vehicles   *VehicleService
	Transports *TransportService
	Decedents  *DecedentService
	Rates      *RatesService
	Audit      *audit.Writer
}

func NewRegistry(db *gorm.DB) *Registry {
	log := audit.NewWriter(db)
	return &Registry{
		Customers:  NewCustomerService(store.NewCustomerStore(db), log),
		Locations:  NewLocationService(store.NewLocationStore(db), log),
		Coroners:   NewCoronerService(store.NewCoronerStore(db), log),
		Pouches:    NewPouchService(store.NewPouchStore(db), log),
		Users:      NewUserService(store.NewUserStore(db), log),
		Employees:  NewEmployeeService(store.NewEmployeeStore(db), log),
		Vehicles:   NewVehicleService(store.NewVehicleStore(db), log),
		Transports: NewTransportService(store.NewTransportStore(db), log),
		Decedents:  NewDecedentService(store.NewDecedentStore(db), log),
		Rates:      NewRatesService(store.NewRatesStore(db), log),
		Audit:      log,
	}
}
