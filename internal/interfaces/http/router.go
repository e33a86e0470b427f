package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/northwind-api/internal/application/usecase"
	"github.com/jhoicas/northwind-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	EmployeeUC *usecase.EmployeeUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API. Las rutas son planas (sin prefijo /api):
// el contrato público del servicio las fija así.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	app.Get("/customers", customerHandler.List)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categoryHandler.List)
	app.Post("/categories", categoryHandler.Create)
	app.Get("/categories/:id", categoryHandler.GetByID)
	app.Put("/categories/:id", categoryHandler.Update)
	app.Delete("/categories/:id", categoryHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products_extended", productHandler.ListExtended)
	app.Get("/products/:id", productHandler.GetByID)

	orderHandler := NewOrderHandler(deps.OrderUC)
	app.Get("/products/:id/orders", orderHandler.ListByProduct)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	app.Get("/employees", employeeHandler.List)
}
