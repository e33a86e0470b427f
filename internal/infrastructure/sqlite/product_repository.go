package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/northwind-api/internal/domain/entity"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(queryGetProduct, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListExtended devuelve productos con su categoría y proveedor (join interno:
// un producto sin categoría o proveedor queda fuera), ordenados por ProductID.
func (r *ProductRepo) ListExtended() ([]*entity.ProductExtended, error) {
	rows, err := r.q.Query(queryListProductsExtended)
	if err != nil {
		return nil, fmt.Errorf("list products extended: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductExtended
	for rows.Next() {
		var p entity.ProductExtended
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Supplier); err != nil {
			return nil, fmt.Errorf("scan product extended: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
