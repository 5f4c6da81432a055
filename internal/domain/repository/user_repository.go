package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
	// UpdateRole cambia el rol (ej. customer → owner al aprobarse el KYC).
	UpdateRole(userID, role string) error
}
