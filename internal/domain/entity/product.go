package entity

// Product representa un producto de Northwind (lectura solamente en esta API).
type Product struct {
	ID   int64
	Name string
}

// ProductExtended es la proyección del join Products ⋈ Categories ⋈ Suppliers.
// El join es interno: un producto sin categoría o proveedor no aparece.
type ProductExtended struct {
	ID       int64
	Name     string
	Category string
	Supplier string
}
