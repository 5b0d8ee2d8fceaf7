package entity

import "time"

// Category representa una agrupación de productos dentro de un dispensario (tenant).
// Name es único por (name, dispensary). Position es un hint de orden asignado al
// crear (max por tenant + 1); no se renumera al borrar, se permiten huecos.
type Category struct {
	ID           string
	DispensaryID string // inmutable después de la creación
	Name         string
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CategoryWithProducts fila del listado agregado: la categoría con los
// productos que la referencian.
type CategoryWithProducts struct {
	ID           string
	DispensaryID string
	Name         string
	Products     []Product
}
