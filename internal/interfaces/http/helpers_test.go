package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/northwind-api/internal/application/usecase"
	"github.com/jhoicas/northwind-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/northwind-api/internal/interfaces/http"
	"github.com/jhoicas/northwind-api/pkg/logger"
)

// buildTestApp levanta la aplicación completa (router + casos de uso +
// adaptadores SQLite) sobre una base simulada con sqlmock, de modo que cada
// test ejercita el mismo camino que una petición real.
func buildTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	customerRepo := sqlite.NewCustomerRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(customerRepo),
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo),
		ProductUC:  usecase.NewProductUseCase(productRepo),
		OrderUC:    usecase.NewOrderUseCase(orderRepo, productRepo),
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo),
		Log:        logger.New(logger.Config{Env: "production", Level: "error"}),
	})
	return app, mock
}

// doJSON ejecuta la petición y devuelve el estado y el cuerpo como string.
func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}
