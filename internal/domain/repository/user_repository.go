package repository

import "github.com/jhoicas/Dispensario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndDispensary(email, dispensaryID string) (*entity.User, error)
}
