package repository

import "github.com/jhoicas/northwind-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// Los clientes son de solo lectura en esta API.
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
}
