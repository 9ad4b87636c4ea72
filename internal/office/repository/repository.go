package repository

import "gorm.io/gorm"

// Repositories 仓库集合
type Repositories struct {
	User        *UserRepository
	Truck       *TruckRepository
	Driver      *DriverRepository
	Trip        *TripRepository
	Expense     *ExpenseRepository
	Customer    *CustomerRepository
	Invoice     *InvoiceRepository
	Employee    *EmployeeRepository
	Inventory   *InventoryRepository
	Supplier    *SupplierRepository
	EditRequest *EditRequestRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Truck:       NewTruckRepository(db),
		Driver:      NewDriverRepository(db),
		Trip:        NewTripRepository(db),
		Expense:     NewExpenseRepository(db),
		Customer:    NewCustomerRepository(db),
		Invoice:     NewInvoiceRepository(db),
		Employee:    NewEmployeeRepository(db),
		Inventory:   NewInventoryRepository(db),
		Supplier:    NewSupplierRepository(db),
		EditRequest: NewEditRequestRepository(db),
	}
}
