package dto

// EmployeeResponse salida de un empleado del listado paginado.
type EmployeeResponse struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	City      string `json:"city"`
}

// EmployeeListResponse colección nombrada de empleados.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
