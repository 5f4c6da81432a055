package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// StoreUseCase casos de uso del onboarding de store-owners: solicitud KYC,
// revisión por el admin y creación de la tienda.
type StoreUseCase struct {
	kycRepo   repository.KYCRepository
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(kycRepo repository.KYCRepository, storeRepo repository.StoreRepository, userRepo repository.UserRepository) *StoreUseCase {
	return &StoreUseCase{kycRepo: kycRepo, storeRepo: storeRepo, userRepo: userRepo}
}

// SubmitKYC registra la solicitud de verificación del usuario. Una solicitud
// pendiente o aprobada bloquea reenvíos; una rechazada permite reintentar.
func (uc *StoreUseCase) SubmitKYC(userID string, in dto.SubmitKYCRequest) (*dto.KYCResponse, error) {
	existing, err := uc.kycRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != entity.KYCStatusRejected {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	kyc := &entity.KYCSubmission{
		ID:             uuid.New().String(),
		OwnerID:        userID,
		FullName:       in.FullName,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Documents:      in.Documents,
		Status:         entity.KYCStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.kycRepo.Create(kyc); err != nil {
		return nil, err
	}
	return toKYCResponse(kyc), nil
}

// GetKYCStatus devuelve la solicitud del usuario, o ErrNotFound si nunca envió una.
func (uc *StoreUseCase) GetKYCStatus(userID string) (*dto.KYCResponse, error) {
	kyc, err := uc.kycRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if kyc == nil {
		return nil, domain.ErrNotFound
	}
	return toKYCResponse(kyc), nil
}

// ListPendingKYC lista las solicitudes pendientes para revisión del admin.
func (uc *StoreUseCase) ListPendingKYC(limit, offset int) ([]dto.KYCResponse, error) {
	list, err := uc.kycRepo.ListByStatus(entity.KYCStatusPending, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.KYCResponse, 0, len(list))
	for _, k := range list {
		items = append(items, *toKYCResponse(k))
	}
	return items, nil
}

// ReviewKYC aprueba o rechaza una solicitud pendiente. Al aprobar, el usuario
// pasa a rol owner; al rechazar, el motivo es obligatorio.
func (uc *StoreUseCase) ReviewKYC(kycID string, in dto.ReviewKYCRequest) (*dto.KYCResponse, error) {
	kyc, err := uc.kycRepo.GetByID(kycID)
	if err != nil {
		return nil, err
	}
	if kyc == nil {
		return nil, domain.ErrNotFound
	}
	if kyc.Status != entity.KYCStatusPending {
		return nil, domain.ErrConflict
	}
	if in.Approve {
		if err := uc.kycRepo.UpdateStatus(kyc.ID, entity.KYCStatusApproved, ""); err != nil {
			return nil, err
		}
		if err := uc.userRepo.UpdateRole(kyc.OwnerID, entity.RoleOwner); err != nil {
			return nil, err
		}
		kyc.Status = entity.KYCStatusApproved
		kyc.Reason = ""
	} else {
		reason := strings.TrimSpace(in.Reason)
		if reason == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.kycRepo.UpdateStatus(kyc.ID, entity.KYCStatusRejected, reason); err != nil {
			return nil, err
		}
		kyc.Status = entity.KYCStatusRejected
		kyc.Reason = reason
	}
	kyc.UpdatedAt = time.Now()
	return toKYCResponse(kyc), nil
}

// CreateStore crea la tienda del owner. Exige KYC aprobado y a lo sumo una
// tienda por owner.
func (uc *StoreUseCase) CreateStore(userID string, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	kyc, err := uc.kycRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if kyc == nil || kyc.Status != entity.KYCStatusApproved {
		return nil, domain.ErrKYCNotApproved
	}
	existing, err := uc.storeRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		OwnerID:   userID,
		KYCID:     kyc.ID,
		Name:      in.Name,
		Slug:      in.Slug,
		Address:   in.Address,
		Status:    entity.StoreStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetMyStore devuelve la tienda del owner autenticado.
func (uc *StoreUseCase) GetMyStore(userID string) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByOwner(userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

func toKYCResponse(k *entity.KYCSubmission) *dto.KYCResponse {
	if k == nil {
		return nil
	}
	return &dto.KYCResponse{
		ID:             k.ID,
		OwnerID:        k.OwnerID,
		FullName:       k.FullName,
		DocumentType:   k.DocumentType,
		DocumentNumber: k.DocumentNumber,
		Documents:      k.Documents,
		Status:         k.Status,
		Reason:         k.Reason,
		CreatedAt:      k.CreatedAt,
		UpdatedAt:      k.UpdatedAt,
	}
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Slug:      s.Slug,
		Address:   s.Address,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}
