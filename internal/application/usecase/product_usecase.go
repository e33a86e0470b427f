package usecase

import (
	"github.com/jhoicas/northwind-api/internal/application/dto"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe: nunca un
// registro con campos en cero disfrazado de éxito.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.ProductResponse{ID: p.ID, Name: p.Name}, nil
}

// ListExtended devuelve el listado con categoría y proveedor.
func (uc *ProductUseCase) ListExtended() (*dto.ProductExtendedListResponse, error) {
	list, err := uc.repo.ListExtended()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductExtendedResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductExtendedResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Supplier: p.Supplier,
		})
	}
	return &dto.ProductExtendedListResponse{ProductsExtended: out}, nil
}
