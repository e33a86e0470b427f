package usecase

import (
	"fmt"

	"github.com/jhoicas/northwind-api/internal/application/dto"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por identificador.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return &dto.CategoryListResponse{Categories: out}, nil
}

// GetByID obtiene una categoría. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return &dto.CategoryResponse{ID: cat.ID, Name: cat.Name}, nil
}

// Create inserta la categoría y la relee con el identificador generado, de modo
// que la respuesta refleja exactamente lo que quedó persistido.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	id, err := uc.repo.Create(in.Name)
	if err != nil {
		return nil, err
	}
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("relectura de categoría %d tras insert: sin fila", id)
	}
	return &dto.CategoryResponse{ID: cat.ID, Name: cat.Name}, nil
}

// Update ejecuta la mutación y la confirma releyendo la fila: si la relectura
// no devuelve fila el identificador no existía. Devuelve (nil, nil) en ese
// caso. No hay verificación previa de existencia que pueda correr en carrera
// con la mutación.
func (uc *CategoryUseCase) Update(id int64, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := uc.repo.Update(id, in.Name); err != nil {
		return nil, err
	}
	cat, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return &dto.CategoryResponse{ID: cat.ID, Name: cat.Name}, nil
}

// Delete elimina la categoría. Propaga domain.ErrNotFound cuando la base no
// afectó ninguna fila.
func (uc *CategoryUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
