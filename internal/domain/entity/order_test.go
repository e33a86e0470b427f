package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/northwind-api/internal/domain/entity"
)

func TestTotalPrice_SinDescuento(t *testing.T) {
	l := entity.OrderLine{
		Quantity:  12,
		UnitPrice: decimal.NewFromFloat(14.00),
		Discount:  decimal.Zero,
	}
	assert.True(t, l.TotalPrice().Equal(decimal.NewFromFloat(168.00)), "12 * 14.00 = 168.00")
}

func TestTotalPrice_ConDescuentoRedondea(t *testing.T) {
	// 10 * 31.35 * (1 - 0.15) = 266.475 -> 266.48 a 2 decimales
	l := entity.OrderLine{
		Quantity:  10,
		UnitPrice: decimal.NewFromFloat(31.35),
		Discount:  decimal.NewFromFloat(0.15),
	}
	assert.Equal(t, "266.48", l.TotalPrice().StringFixed(2))
}

func TestTotalPrice_DescuentoTotal(t *testing.T) {
	l := entity.OrderLine{
		Quantity:  5,
		UnitPrice: decimal.NewFromFloat(9.99),
		Discount:  decimal.NewFromInt(1),
	}
	assert.True(t, l.TotalPrice().IsZero())
}
