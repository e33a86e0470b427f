package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func putJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCategorias_Listar(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectQuery("SELECT CategoryID, CategoryName").
		WillReturnRows(sqlmock.NewRows([]string{"CategoryID", "CategoryName"}).
			AddRow(int64(1), "Beverages").
			AddRow(int64(2), "Condiments"))

	status, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"categories":[{"id":1,"name":"Beverages"},{"id":2,"name":"Condiments"}]}`, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Escenario del contrato: con 8 categorías preexistentes, el POST devuelve 201
// con el ID 9 asignado por la base y la fila releída.
func TestCategorias_Crear(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectExec("INSERT INTO Categories").
		WithArgs("Beverages2").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("SELECT CategoryID, CategoryName").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"CategoryID", "CategoryName"}).
			AddRow(int64(9), "Beverages2"))

	status, body := doJSON(t, app, postJSON("/categories", `{"name":"Beverages2"}`))
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":9,"name":"Beverages2"}`, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorias_CrearSinNombre(t *testing.T) {
	app, mock := buildTestApp(t)

	status, _ := doJSON(t, app, postJSON("/categories", `{"name":""}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet(), "la base no debe recibir nada")
}

func TestCategorias_ObtenerPorID(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectQuery("SELECT CategoryID, CategoryName").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"CategoryID", "CategoryName"}).
			AddRow(int64(9), "Beverages2"))

	status, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/categories/9", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":9,"name":"Beverages2"}`, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorias_ObtenerPorIDNoExistente(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectQuery("SELECT CategoryID, CategoryName").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"CategoryID", "CategoryName"}))

	status, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/categories/9", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "NOT_FOUND")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorias_Actualizar(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectExec("UPDATE Categories SET").
		WithArgs("Renamed", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT CategoryID, CategoryName").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"CategoryID", "CategoryName"}).
			AddRow(int64(1), "Renamed"))

	status, body := doJSON(t, app, putJSON("/categories/1", `{"name":"Renamed"}`))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Renamed"}`, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// El update contra un ID inexistente se clasifica por la relectura vacía.
func TestCategorias_ActualizarNoExistente(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectExec("UPDATE Categories SET").
		WithArgs("Ghost", int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT CategoryID, CategoryName").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"CategoryID", "CategoryName"}))

	status, _ := doJSON(t, app, putJSON("/categories/999", `{"name":"Ghost"}`))
	assert.Equal(t, http.StatusNotFound, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorias_Eliminar(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectExec("DELETE FROM Categories").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	status, body := doJSON(t, app, httptest.NewRequest(http.MethodDelete, "/categories/9", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"deleted":1}`, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorias_EliminarNoExistente(t *testing.T) {
	app, mock := buildTestApp(t)
	mock.ExpectExec("DELETE FROM Categories").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, _ := doJSON(t, app, httptest.NewRequest(http.MethodDelete, "/categories/9", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorias_IDNoNumericoEsNotFound(t *testing.T) {
	app, mock := buildTestApp(t)

	status, _ := doJSON(t, app, httptest.NewRequest(http.MethodDelete, "/categories/abc", nil))
	require.Equal(t, http.StatusNotFound, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
