package repository

import "github.com/jhoicas/northwind-api/internal/domain/entity"

// EmployeeRepository define el puerto de lectura paginada de empleados.
type EmployeeRepository interface {
	// List aplica LIMIT/OFFSET y ordena por la clave pública indicada
	// ("first_name", "last_name", "city" o "" para el orden por defecto).
	// Una clave fuera de la lista blanca produce domain.ErrInvalidOrder sin
	// tocar la base.
	List(limit, offset int, order string) ([]*entity.Employee, error)
}
