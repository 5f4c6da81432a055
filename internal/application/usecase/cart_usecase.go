package usecase

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito: un documento por usuario que se
// reemplaza completo en cada guardado (last-writer-wins).
type CartUseCase struct {
	cartRepo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo}
}

// Get devuelve el carrito del usuario; un usuario sin carrito recibe uno vacío.
func (uc *CartUseCase) Get(userID string) (*dto.CartResponse, error) {
	cart, err := uc.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &dto.CartResponse{UserID: userID, Items: json.RawMessage("[]")}, nil
	}
	return toCartResponse(cart), nil
}

// Save reemplaza el carrito completo del usuario.
func (uc *CartUseCase) Save(userID string, in dto.SaveCartRequest) (*dto.CartResponse, error) {
	items := in.Items
	if items == nil {
		items = []dto.CartItem{}
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	cart := &entity.Cart{
		UserID:    userID,
		Items:     raw,
		UpdatedAt: time.Now(),
	}
	if err := uc.cartRepo.Upsert(cart); err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// Clear vacía el carrito del usuario.
func (uc *CartUseCase) Clear(userID string) error {
	return uc.cartRepo.Delete(userID)
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	items := c.Items
	if len(items) == 0 {
		items = json.RawMessage("[]")
	}
	return &dto.CartResponse{
		UserID:    c.UserID,
		Items:     items,
		UpdatedAt: c.UpdatedAt,
	}
}
