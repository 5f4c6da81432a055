package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta el cierre de un pedido dentro de una transacción:
// insertar pedido + renglones, descontar stock y vaciar el carrito, todo o nada.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		inventoryRepo repository.InventoryRepository,
		cartRepo repository.CartRepository,
	) error) error
}

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	OrderReceipt(order *entity.Order, storeName string) ([]byte, error)
}

// OrderUseCase casos de uso de pedidos: checkout transaccional, consulta y comprobante.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	cartRepo    repository.CartRepository
	txRunner    CheckoutTxRunner
	receipts    ReceiptGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, storeRepo repository.StoreRepository, cartRepo repository.CartRepository, txRunner CheckoutTxRunner, receipts ReceiptGenerator) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		cartRepo:    cartRepo,
		txRunner:    txRunner,
		receipts:    receipts,
	}
}

// PlaceOrder confirma un pedido a una tienda. Los precios se toman del catálogo
// vigente, nunca del cliente. Si la tienda tiene renglón de inventario para un
// producto, el stock se valida y descuenta; dentro de una sola transacción.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, userID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if store.Status != entity.StoreStatusActive {
		return nil, domain.ErrConflict
	}

	cartItems := in.Items
	fromCart := false
	if len(cartItems) == 0 {
		cartItems, err = uc.savedCartItems(userID)
		if err != nil {
			return nil, err
		}
		fromCart = true
	}
	if len(cartItems) == 0 {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.buildOrder(userID, store.ID, cartItems)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunCheckout(ctx, func(
		orderRepo repository.OrderRepository,
		inventoryRepo repository.InventoryRepository,
		cartRepo repository.CartRepository,
	) error {
		number, err := orderRepo.NextNumber()
		if err != nil {
			return err
		}
		order.Number = number
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range order.Items {
			if err := uc.decrementStock(inventoryRepo, store.ID, item); err != nil {
				return err
			}
		}
		if fromCart {
			if err := cartRepo.Delete(userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devuelve un pedido si el solicitante es el comprador o el owner de la tienda.
func (uc *OrderUseCase) GetByID(orderID, userID string) (*dto.OrderResponse, error) {
	order, err := uc.authorizedOrder(orderID, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListMine lista los pedidos del usuario autenticado.
func (uc *OrderUseCase) ListMine(userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, page), nil
}

// ListForStore lista los pedidos recibidos por la tienda del owner.
func (uc *OrderUseCase) ListForStore(ownerID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	store, err := uc.storeRepo.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.orderRepo.ListByStore(store.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, page), nil
}

// Receipt genera el comprobante PDF de un pedido del solicitante.
func (uc *OrderUseCase) Receipt(orderID, userID string) ([]byte, error) {
	order, err := uc.authorizedOrder(orderID, userID)
	if err != nil {
		return nil, err
	}
	store, err := uc.storeRepo.GetByID(order.StoreID)
	if err != nil {
		return nil, err
	}
	storeName := ""
	if store != nil {
		storeName = store.Name
	}
	return uc.receipts.OrderReceipt(order, storeName)
}

// authorizedOrder carga el pedido y verifica que userID sea el comprador o el
// owner de la tienda destinataria.
func (uc *OrderUseCase) authorizedOrder(orderID, userID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID == userID {
		return order, nil
	}
	store, err := uc.storeRepo.GetByID(order.StoreID)
	if err != nil {
		return nil, err
	}
	if store != nil && store.OwnerID == userID {
		return order, nil
	}
	return nil, domain.ErrForbidden
}

// savedCartItems lee y decodifica el carrito guardado del usuario.
func (uc *OrderUseCase) savedCartItems(userID string) ([]dto.CartItem, error) {
	cart, err := uc.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, nil
	}
	var items []dto.CartItem
	if err := json.Unmarshal(cart.Items, &items); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return items, nil
}

// buildOrder arma el pedido con precios vigentes del catálogo y calcula el total.
func (uc *OrderUseCase) buildOrder(userID, storeID string, cartItems []dto.CartItem) (*entity.Order, error) {
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		StoreID:   storeID,
		Status:    entity.OrderStatusPlaced,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, ci := range cartItems {
		if ci.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ci.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, domain.ErrProductNotFound
		}
		variant, ok := findVariant(product, ci.VariantID)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		unitPrice := variant.EffectivePrice()
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
		order.Items = append(order.Items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			VariantID:   variant.ID,
			ProductName: product.Name,
			Quantity:    ci.Quantity,
			UnitPrice:   unitPrice,
			Subtotal:    subtotal,
		})
		order.Total = order.Total.Add(subtotal)
	}
	return order, nil
}

// decrementStock valida y descuenta stock si la tienda mantiene inventario del
// producto; sin renglón de inventario el producto se vende sin control de stock.
func (uc *OrderUseCase) decrementStock(inventoryRepo repository.InventoryRepository, storeID string, item entity.OrderItem) error {
	inv, err := inventoryRepo.GetByStoreAndProduct(storeID, item.ProductID)
	if err != nil {
		return err
	}
	if inv == nil {
		return nil
	}
	if !inv.IsActive || inv.Stock < item.Quantity {
		return domain.ErrInsufficientStock
	}
	inv.Stock -= item.Quantity
	inv.UpdatedAt = time.Now()
	return inventoryRepo.Upsert(inv)
}

func findVariant(p *entity.Product, variantID string) (entity.ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return entity.ProductVariant{}, false
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Number:    o.Number,
		UserID:    o.UserID,
		StoreID:   o.StoreID,
		Status:    o.Status,
		Total:     o.Total,
		Items:     items,
		CreatedAt: o.CreatedAt,
	}
}

func toOrderList(list []*entity.Order, page dto.PageRequest) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
