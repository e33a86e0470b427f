package sqlite

import "github.com/jhoicas/northwind-api/internal/domain"

// Catálogo de consultas: una constante por operación lógica. Todo valor del
// cliente viaja como parámetro ?. El único identificador dinámico permitido
// (la columna de orden de empleados) se resuelve por lista blanca antes de
// entrar al texto de la consulta; ninguna otra cadena del cliente se concatena.
const (
	queryListCustomers = `
		SELECT CustomerID, CompanyName, Address, PostalCode, City, Country
		FROM Customers
		ORDER BY lower(CustomerID)`

	queryListCategories = `
		SELECT CategoryID, CategoryName
		FROM Categories
		ORDER BY CategoryID`

	queryGetCategory = `
		SELECT CategoryID, CategoryName
		FROM Categories
		WHERE CategoryID = ?`

	queryInsertCategory = `
		INSERT INTO Categories (CategoryName) VALUES (?)`

	queryUpdateCategory = `
		UPDATE Categories SET CategoryName = ? WHERE CategoryID = ?`

	queryDeleteCategory = `
		DELETE FROM Categories WHERE CategoryID = ?`

	queryGetProduct = `
		SELECT ProductID, ProductName
		FROM Products
		WHERE ProductID = ?`

	queryListProductsExtended = `
		SELECT p.ProductID, p.ProductName, c.CategoryName, s.CompanyName
		FROM Products p
		JOIN Categories c ON p.CategoryID = c.CategoryID
		JOIN Suppliers s ON p.SupplierID = s.SupplierID
		ORDER BY p.ProductID`

	queryOrdersByProduct = `
		SELECT o.OrderID, cu.CompanyName, od.Quantity, od.UnitPrice, od.Discount
		FROM Orders o
		JOIN Customers cu ON o.CustomerID = cu.CustomerID
		JOIN "Order Details" od ON o.OrderID = od.OrderID
		WHERE od.ProductID = ?
		ORDER BY o.OrderID`

	// El %s se sustituye por la columna ya resuelta en employeeOrderColumn:
	// SQLite liga valores con ?, no identificadores, así que la columna de
	// ORDER BY es el único punto de ensamblado textual.
	queryListEmployees = `
		SELECT EmployeeID, LastName, FirstName, City
		FROM Employees
		ORDER BY %s
		LIMIT ? OFFSET ?`
)

// employeeOrderColumns mapea cada clave pública de orden a exactamente una
// columna física de Employees. La clave vacía es el orden por defecto.
var employeeOrderColumns = map[string]string{
	"":           "EmployeeID",
	"first_name": "FirstName",
	"last_name":  "LastName",
	"city":       "City",
}

// employeeOrderColumn resuelve la clave pública de orden contra la lista
// blanca. Cualquier valor fuera de ella produce ErrInvalidOrder sin llegar
// jamás al texto de la consulta.
func employeeOrderColumn(order string) (string, error) {
	col, ok := employeeOrderColumns[order]
	if !ok {
		return "", domain.ErrInvalidOrder
	}
	return col, nil
}
