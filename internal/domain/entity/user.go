package entity

import "time"

// User cuenta que administra el catálogo de un dispensario.
type User struct {
	ID           string
	DispensaryID string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
