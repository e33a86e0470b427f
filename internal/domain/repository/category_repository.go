package repository

import "github.com/jhoicas/northwind-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	// GetByID devuelve (nil, nil) si la categoría no existe.
	GetByID(id int64) (*entity.Category, error)
	// Create inserta y devuelve el identificador generado por la base.
	Create(name string) (int64, error)
	// Update ejecuta el UPDATE sin verificar existencia; el caso de uso la
	// confirma releyendo la fila (evita una verificación previa que podría
	// correr en carrera con la mutación).
	Update(id int64, name string) error
	// Delete devuelve domain.ErrNotFound si ninguna fila fue afectada.
	Delete(id int64) error
}
