package dto

// CustomerResponse salida de un cliente. full_address concatena dirección,
// código postal, ciudad y país con un espacio; segmentos ausentes quedan vacíos.
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FullAddress string `json:"full_address"`
}

// CustomerListResponse colección nombrada de clientes (vacía ≠ not found).
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}
