package usecase

import (
	"github.com/jhoicas/northwind-api/internal/application/dto"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

// Cotas de paginación. La fuente de este API no acota limit/offset; aquí sí,
// para que una petición no pueda pedir la tabla completa de un golpe.
const (
	defaultEmployeeLimit = 20
	maxEmployeeLimit     = 100
)

// EmployeeUseCase caso de uso de lectura paginada de empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devuelve empleados paginados y ordenados por la clave pública indicada.
// Propaga domain.ErrInvalidOrder si la clave no está en la lista blanca.
func (uc *EmployeeUseCase) List(limit, offset int, order string) (*dto.EmployeeListResponse, error) {
	if limit <= 0 {
		limit = defaultEmployeeLimit
	}
	if limit > maxEmployeeLimit {
		limit = maxEmployeeLimit
	}
	if offset < 0 {
		offset = 0
	}

	list, err := uc.repo.List(limit, offset, order)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		city := ""
		if e.City != nil {
			city = *e.City
		}
		out = append(out, dto.EmployeeResponse{
			ID:        e.ID,
			LastName:  e.LastName,
			FirstName: e.FirstName,
			City:      city,
		})
	}
	return &dto.EmployeeListResponse{Employees: out}, nil
}
