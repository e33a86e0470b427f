package entity

// Category representa una categoría de productos de Northwind.
// El identificador lo asigna la base al insertar.
type Category struct {
	ID   int64
	Name string
}
