package entity

import "github.com/shopspring/decimal"

// Product proyección de solo lectura del catálogo de productos.
// Este servicio nunca escribe productos; solo los lee para el listado
// agregado de categorías.
type Product struct {
	ID           string
	Name         string
	Description  string
	Amount       decimal.Decimal // precio de venta
	Quantity     int
	Image        string
	CategoryID   string
	DispensaryID string
}
