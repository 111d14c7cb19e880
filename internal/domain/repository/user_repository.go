package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByLoginID(loginID string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdatePassword(email, passwordHash string) error
}
