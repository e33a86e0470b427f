package repository

import "github.com/jhoicas/northwind-api/internal/domain/entity"

// OrderRepository define el puerto de lectura de líneas de pedido por producto.
type OrderRepository interface {
	// ListByProduct devuelve las líneas de pedido del producto ordenadas por
	// OrderID ascendente. Lista vacía si el producto no tiene pedidos; la
	// existencia del producto la verifica el caso de uso.
	ListByProduct(productID int64) ([]*entity.OrderLine, error)
}
