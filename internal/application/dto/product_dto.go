package dto

// ProductResponse salida de la consulta puntual de producto.
type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductExtendedResponse producto con nombre de categoría y proveedor.
type ProductExtendedResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Supplier string `json:"supplier"`
}

// ProductExtendedListResponse colección nombrada del listado extendido.
type ProductExtendedListResponse struct {
	ProductsExtended []ProductExtendedResponse `json:"products_extended"`
}
