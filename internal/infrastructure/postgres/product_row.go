package postgres

import (
	"github.com/jhoicas/Dispensario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// productRow columnas del lado producto del LEFT JOIN: todas nullables
// porque una categoría sin productos produce una fila con NULLs.
type productRow struct {
	ID           *string
	Name         *string
	Description  *string
	Amount       *decimal.Decimal
	Quantity     *int
	Image        *string
	CategoryID   *string
	DispensaryID *string
}

func (p productRow) toEntity() entity.Product {
	out := entity.Product{}
	if p.ID != nil {
		out.ID = *p.ID
	}
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	if p.Quantity != nil {
		out.Quantity = *p.Quantity
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.CategoryID != nil {
		out.CategoryID = *p.CategoryID
	}
	if p.DispensaryID != nil {
		out.DispensaryID = *p.DispensaryID
	}
	return out
}
