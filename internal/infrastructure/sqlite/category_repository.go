package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/northwind-api/internal/domain"
	"github.com/jhoicas/northwind-api/internal/domain/entity"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre SQLite.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List devuelve todas las categorías ordenadas por identificador.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(queryListCategories)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(queryGetCategory, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Create inserta la categoría y devuelve el identificador asignado por la base.
func (r *CategoryRepo) Create(name string) (int64, error) {
	res, err := r.q.Exec(queryInsertCategory, name)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update ejecuta el UPDATE por ID. No clasifica existencia: el caso de uso la
// confirma releyendo la fila.
func (r *CategoryRepo) Update(id int64, name string) error {
	if _, err := r.q.Exec(queryUpdateCategory, name, id); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina la categoría por ID. Éxito solo si la base reporta al menos
// una fila afectada; cero filas significa que el ID no existía.
func (r *CategoryRepo) Delete(id int64) error {
	res, err := r.q.Exec(queryDeleteCategory, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
