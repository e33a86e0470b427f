package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestEmpleados_PaginadoYOrdenado(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectQuery("FROM Employees").
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows([]string{"EmployeeID", "LastName", "FirstName", "City"}).
			AddRow(int64(5), "Buchanan", "Steven", "London").
			AddRow(int64(8), "Callahan", "Laura", "Seattle"))

	status, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/employees?limit=2&offset=0&order=last_name", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"employees":[
		{"id":5,"last_name":"Buchanan","first_name":"Steven","city":"London"},
		{"id":8,"last_name":"Callahan","first_name":"Laura","city":"Seattle"}
	]}`, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Una clave de orden fuera de la lista blanca es un 400 y jamás llega a la base.
func TestEmpleados_OrdenFueraDeListaBlanca(t *testing.T) {
	app, mock := buildTestApp(t)

	status, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/employees?order=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "INVALID_ORDER")
	assert.NoError(t, mock.ExpectationsWereMet(), "la consulta no debe ejecutarse")
}

func TestEmpleados_SinParametrosUsaDefaults(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectQuery("FROM Employees").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"EmployeeID", "LastName", "FirstName", "City"}).
			AddRow(int64(1), "Davolio", "Nancy", "Seattle"))

	status, _ := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
