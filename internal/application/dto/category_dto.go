package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name       string `json:"name" form:"name"`
	Dispensary string `json:"dispensary" form:"dispensary"`
}

// DeleteCategoryRequest entrada para borrar una categoría.
type DeleteCategoryRequest struct {
	ID         string `json:"id" form:"id"`
	Dispensary string `json:"dispensary" form:"dispensary"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// ID y Dispensary identifican el registro pero NUNCA se aplican como
// cambios: la identidad y el tenant son inmutables.
type UpdateCategoryRequest struct {
	ID         string  `json:"id" form:"id"`
	Dispensary string  `json:"dispensary" form:"dispensary"`
	Name       *string `json:"name" form:"name"`
	Position   *int    `json:"position" form:"position"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID         string    `json:"id"`
	Dispensary string    `json:"dispensary"`
	Name       string    `json:"name"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ProductResponse proyección de un producto dentro del listado agregado.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Dispensary  string          `json:"dispensary"`
}

// CategoryWithProductsResponse fila del listado: categoría + sus productos.
type CategoryWithProductsResponse struct {
	ID         string            `json:"id"`
	Dispensary string            `json:"dispensary"`
	Name       string            `json:"name"`
	Products   []ProductResponse `json:"products"`
}
