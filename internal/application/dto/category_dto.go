package dto

// CreateCategoryRequest entrada para crear o actualizar una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryListResponse colección nombrada de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// DeleteCategoryResponse confirma un borrado efectivo.
type DeleteCategoryResponse struct {
	Deleted int `json:"deleted"`
}
