package entity

// Employee representa un empleado de Northwind (lectura solamente, paginado).
// City puede ser NULL en la base.
type Employee struct {
	ID        int64
	LastName  string
	FirstName string
	City      *string
}
