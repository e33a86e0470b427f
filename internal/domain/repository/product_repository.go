package repository

import "github.com/jhoicas/northwind-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Productos son de solo lectura en esta API.
type ProductRepository interface {
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	// ListExtended devuelve el join interno con categoría y proveedor.
	ListExtended() ([]*entity.ProductExtended, error)
}
