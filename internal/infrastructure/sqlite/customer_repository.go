package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jhoicas/northwind-api/internal/domain/entity"
	"github.com/jhoicas/northwind-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre SQLite.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List devuelve todos los clientes ordenados por CustomerID normalizado a
// minúsculas. Los componentes de dirección NULL se devuelven como punteros nil.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(queryListCustomers)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var address, postal, city, country sql.NullString
		if err := rows.Scan(&c.ID, &c.CompanyName, &address, &postal, &city, &country); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Address = nullableString(address)
		c.PostalCode = nullableString(postal)
		c.City = nullableString(city)
		c.Country = nullableString(country)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// nullableString convierte sql.NullString en *string (nil si era NULL).
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
