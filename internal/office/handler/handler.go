package handler

import (
	"strconv"

	"github.com/codewithkin/wd-logistics/internal/office/service"
	"github.com/gin-gonic/gin"
)

// Handlers HTTP处理器集合
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Truck       *TruckHandler
	Driver      *DriverHandler
	Trip        *TripHandler
	Expense     *ExpenseHandler
	Customer    *CustomerHandler
	Invoice     *InvoiceHandler
	Employee    *EmployeeHandler
	Inventory   *InventoryHandler
	Supplier    *SupplierHandler
	EditRequest *EditRequestHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:        NewAuthHandler(services.Auth),
		User:        NewUserHandler(services.User),
		Truck:       NewTruckHandler(services.Truck),
		Driver:      NewDriverHandler(services.Driver),
		Trip:        NewTripHandler(services.Trip),
		Expense:     NewExpenseHandler(services.Expense),
		Customer:    NewCustomerHandler(services.Customer),
		Invoice:     NewInvoiceHandler(services.Invoice),
		Employee:    NewEmployeeHandler(services.Employee),
		Inventory:   NewInventoryHandler(services.Inventory),
		Supplier:    NewSupplierHandler(services.Supplier),
		EditRequest: NewEditRequestHandler(services.EditRequest),
	}
}

// pageParams 解析分页参数
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 20
	}
	return page, size
}
