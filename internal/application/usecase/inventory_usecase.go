package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// InventoryUseCase casos de uso del inventario por tienda. Todas las
// operaciones están acotadas a la tienda del owner autenticado.
type InventoryUseCase struct {
	inventoryRepo repository.InventoryRepository
	storeRepo     repository.StoreRepository
	productRepo   repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(inventoryRepo repository.InventoryRepository, storeRepo repository.StoreRepository, productRepo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{inventoryRepo: inventoryRepo, storeRepo: storeRepo, productRepo: productRepo}
}

// Upsert crea o reemplaza el renglón de inventario de un producto en la tienda
// del owner (last-writer-wins).
func (uc *InventoryUseCase) Upsert(ownerID string, in dto.UpsertInventoryRequest) (*dto.InventoryItemResponse, error) {
	store, err := uc.ownerStore(ownerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		StoreID:   store.ID,
		ProductID: in.ProductID,
		Stock:     in.Stock,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.inventoryRepo.Upsert(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// List lista el inventario de la tienda del owner con paginación.
func (uc *InventoryUseCase) List(ownerID string, page dto.PageRequest) (*dto.InventoryListResponse, error) {
	store, err := uc.ownerStore(ownerID)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.inventoryRepo.ListByStore(store.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryResponse(it))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ownerStore resuelve la tienda del owner; ErrForbidden si no tiene tienda.
func (uc *InventoryUseCase) ownerStore(ownerID string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrForbidden
	}
	return store, nil
}

func toInventoryResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:        i.ID,
		StoreID:   i.StoreID,
		ProductID: i.ProductID,
		Stock:     i.Stock,
		IsActive:  i.IsActive,
		UpdatedAt: i.UpdatedAt,
	}
}
