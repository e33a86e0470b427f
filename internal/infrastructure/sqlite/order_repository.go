package sqlite

import (
	"fmt"

	"github.com/jhoicas/northwind-api/internal/domain/entity"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre SQLite.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de lectura de pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// ListByProduct devuelve las líneas de pedido del producto (Orders ⋈ Customers
// ⋈ "Order Details") ordenadas por OrderID. Lista vacía si no hay pedidos.
func (r *OrderRepo) ListByProduct(productID int64) ([]*entity.OrderLine, error) {
	rows, err := r.q.Query(queryOrdersByProduct, productID)
	if err != nil {
		return nil, fmt.Errorf("list orders by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.OrderID, &l.Customer, &l.Quantity, &l.UnitPrice, &l.Discount); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
