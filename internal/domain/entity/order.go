package entity

import "github.com/shopspring/decimal"

// OrderLine es una línea de pedido de un producto: el join de Orders, Customers
// y "Order Details" proyectado sobre un ProductID.
type OrderLine struct {
	OrderID   int64
	Customer  string // CompanyName del cliente
	Quantity  int64
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal // fracción 0..1
}

// TotalPrice calcula quantity * unit_price * (1 - discount) redondeado a 2
// decimales. Se usa decimal para evitar el ruido binario de float64 en montos.
func (l OrderLine) TotalPrice() decimal.Decimal {
	one := decimal.NewFromInt(1)
	return decimal.NewFromInt(l.Quantity).
		Mul(l.UnitPrice).
		Mul(one.Sub(l.Discount)).
		Round(2)
}
