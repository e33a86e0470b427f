package entity

import "strings"

// Customer representa un cliente de Northwind. El ID es alfabético (ej. "ALFKI")
// y estable. Los componentes de dirección pueden ser NULL en la base; se modelan
// como punteros para distinguir ausencia de cadena vacía.
type Customer struct {
	ID          string
	CompanyName string
	Address     *string
	PostalCode  *string
	City        *string
	Country     *string
}

// FullAddress concatena dirección, código postal, ciudad y país separados por un
// espacio. Un componente NULL se trata como segmento vacío; nunca se emite el
// literal "null".
func (c Customer) FullAddress() string {
	segs := []string{
		deref(c.Address),
		deref(c.PostalCode),
		deref(c.City),
		deref(c.Country),
	}
	return strings.Join(segs, " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
