package usecase

import (
	"github.com/jhoicas/northwind-api/internal/application/dto"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

// OrderUseCase caso de uso de lectura de pedidos por producto.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products}
}

// ListByProduct verifica primero que el producto exista (devuelve (nil, nil) si
// no) y luego lista sus líneas de pedido. Un producto existente sin pedidos
// produce la colección vacía, no un not-found.
func (uc *OrderUseCase) ListByProduct(productID int64) (*dto.OrderListResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	lines, err := uc.orders.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.OrderResponse{
			ID:         l.OrderID,
			Customer:   l.Customer,
			Quantity:   l.Quantity,
			TotalPrice: l.TotalPrice().InexactFloat64(),
		})
	}
	return &dto.OrderListResponse{Orders: out}, nil
}
