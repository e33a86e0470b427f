package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jhoicas/northwind-api/internal/domain/entity"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre SQLite.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de lectura de empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// List devuelve empleados paginados. La clave de orden se valida contra la
// lista blanca del catálogo antes de ensamblar la consulta; limit y offset
// viajan como parámetros ligados.
func (r *EmployeeRepo) List(limit, offset int, order string) ([]*entity.Employee, error) {
	col, err := employeeOrderColumn(order)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.Query(fmt.Sprintf(queryListEmployees, col), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		var city sql.NullString
		if err := rows.Scan(&e.ID, &e.LastName, &e.FirstName, &city); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.City = nullableString(city)
		list = append(list, &e)
	}
	return list, rows.Err()
}
