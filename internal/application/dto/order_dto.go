package dto

// OrderResponse línea de pedido de un producto. total_price ya viene
// redondeado a 2 decimales.
type OrderResponse struct {
	ID         int64   `json:"id"`
	Customer   string  `json:"customer"`
	Quantity   int64   `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// OrderListResponse colección nombrada de pedidos. Vacía cuando el producto
// existe pero no tiene pedidos; el producto inexistente es un 404, no esto.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}
