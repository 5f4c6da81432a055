package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	GetByOwner(ownerID string) (*entity.Store, error)
}

// KYCRepository define el puerto de persistencia para solicitudes KYC.
type KYCRepository interface {
	Create(kyc *entity.KYCSubmission) error
	GetByID(id string) (*entity.KYCSubmission, error)
	GetByOwner(ownerID string) (*entity.KYCSubmission, error)
	ListByStatus(status string, limit, offset int) ([]*entity.KYCSubmission, error)
	// UpdateStatus cambia el estado y guarda el motivo (vacío si no aplica).
	UpdateStatus(id, status, reason string) error
}
