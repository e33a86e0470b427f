package sqlite

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepo_ListByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryOrdersByProduct)).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"OrderID", "CompanyName", "Quantity", "UnitPrice", "Discount"}).
			AddRow(int64(10248), "Vins et alcools Chevalier", int64(12), 14.0, 0.0).
			AddRow(int64(10296), "LILA-Supermercado", int64(12), 16.8, 0.15))

	list, err := repo.ListByProduct(11)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(10248), list[0].OrderID)
	assert.Equal(t, "Vins et alcools Chevalier", list[0].Customer)
	assert.Equal(t, "168.00", list[0].TotalPrice().StringFixed(2))

	// 12 * 16.8 * 0.85 = 171.36
	assert.Equal(t, "171.36", list[1].TotalPrice().StringFixed(2))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_ListByProduct_SinPedidos(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryOrdersByProduct)).
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"OrderID", "CompanyName", "Quantity", "UnitPrice", "Discount"}))

	list, err := repo.ListByProduct(77)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}
