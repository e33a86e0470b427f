package usecase

import (
	"github.com/jhoicas/northwind-api/internal/application/dto"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

// CustomerUseCase casos de uso de lectura para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve todos los clientes con la dirección completa sintetizada.
// La colección va siempre nombrada, aun vacía.
func (uc *CustomerUseCase) List() (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{
			ID:          c.ID,
			Name:        c.CompanyName,
			FullAddress: c.FullAddress(),
		})
	}
	return &dto.CustomerListResponse{Customers: out}, nil
}
