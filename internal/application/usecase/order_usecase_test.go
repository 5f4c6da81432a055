package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// ─────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────

type fakeOrderRepo struct {
	byID map[string]*entity.Order
	seq  int
}

func newFakeOrderRepo() *fakeOrderRepo { return &fakeOrderRepo{byID: map[string]*entity.Order{}} }

func (f *fakeOrderRepo) Create(order *entity.Order) error {
	f.byID[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.byID[id], nil }

func (f *fakeOrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range f.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range f.byID {
		if o.StoreID == storeID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) NextNumber() (string, error) {
	f.seq++
	return fmt.Sprintf("PED-%06d", f.seq), nil
}

type fakeInventoryRepo struct {
	items map[string]*entity.InventoryItem // clave store|product
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: map[string]*entity.InventoryItem{}}
}

func invKey(storeID, productID string) string { return storeID + "|" + productID }

func (f *fakeInventoryRepo) Upsert(item *entity.InventoryItem) error {
	f.items[invKey(item.StoreID, item.ProductID)] = item
	return nil
}

func (f *fakeInventoryRepo) GetByStoreAndProduct(storeID, productID string) (*entity.InventoryItem, error) {
	return f.items[invKey(storeID, productID)], nil
}

func (f *fakeInventoryRepo) ListByStore(storeID string, limit, offset int) ([]*entity.InventoryItem, error) {
	out := []*entity.InventoryItem{}
	for _, it := range f.items {
		if it.StoreID == storeID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeCartRepo struct {
	byUser map[string]*entity.Cart
}

func newFakeCartRepo() *fakeCartRepo { return &fakeCartRepo{byUser: map[string]*entity.Cart{}} }

func (f *fakeCartRepo) GetByUser(userID string) (*entity.Cart, error) { return f.byUser[userID], nil }

func (f *fakeCartRepo) Upsert(cart *entity.Cart) error {
	f.byUser[cart.UserID] = cart
	return nil
}

func (f *fakeCartRepo) Delete(userID string) error {
	delete(f.byUser, userID)
	return nil
}

// fakeTxRunner pasa los mismos fakes al callback; si fn falla simula el
// rollback restaurando el estado previo del inventario.
type fakeTxRunner struct {
	orders    *fakeOrderRepo
	inventory *fakeInventoryRepo
	carts     *fakeCartRepo
}

func (f *fakeTxRunner) RunCheckout(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	cartRepo repository.CartRepository,
) error) error {
	snapshot := map[string]entity.InventoryItem{}
	for k, v := range f.inventory.items {
		snapshot[k] = *v
	}
	if err := fn(f.orders, f.inventory, f.carts); err != nil {
		restored := map[string]*entity.InventoryItem{}
		for k := range snapshot {
			item := snapshot[k]
			restored[k] = &item
		}
		f.inventory.items = restored
		return err
	}
	return nil
}

type fakeReceipts struct{}

func (fakeReceipts) OrderReceipt(order *entity.Order, storeName string) ([]byte, error) {
	return []byte("%PDF-" + order.Number + " " + storeName), nil
}

type orderFixture struct {
	orders    *fakeOrderRepo
	inventory *fakeInventoryRepo
	carts     *fakeCartRepo
	stores    *fakeStoreRepo
	products  *fakeProductRepo
	uc        *OrderUseCase
}

func newOrderFixture() *orderFixture {
	orders := newFakeOrderRepo()
	inventory := newFakeInventoryRepo()
	carts := newFakeCartRepo()
	stores := newFakeStoreRepo()
	stores.byID["s1"] = &entity.Store{ID: "s1", OwnerID: "owner1", Name: "La Tienda", Status: entity.StoreStatusActive}

	products := &fakeProductRepo{products: []*entity.Product{
		{
			ID: "p1", Name: "Limón Tahití", IsActive: true,
			MainCategoryID: "abarrotes", SubCategoryID: "frutas",
			Variants: []entity.ProductVariant{
				{ID: "v1", ProductID: "p1", Quantity: "500 g", Price: decimal.NewFromInt(3500)},
				{
					ID: "v2", ProductID: "p1", Quantity: "1 kg",
					Price:           decimal.NewFromInt(6000),
					DiscountedPrice: decimal.NullDecimal{Valid: true, Decimal: decimal.NewFromInt(5000)},
				},
			},
		},
	}}

	runner := &fakeTxRunner{orders: orders, inventory: inventory, carts: carts}
	uc := NewOrderUseCase(orders, products, stores, carts, runner, fakeReceipts{})
	return &orderFixture{orders: orders, inventory: inventory, carts: carts, stores: stores, products: products, uc: uc}
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestPlaceOrder_CalculaTotalConPrecioVigente(t *testing.T) {
	fx := newOrderFixture()

	resp, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "s1",
		Items: []dto.CartItem{
			{ProductID: "p1", VariantID: "v1", Quantity: 2}, // 2 x 3500
			{ProductID: "p1", VariantID: "v2", Quantity: 1}, // 1 x 5000 (precio con descuento)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "PED-000001", resp.Number)
	assert.Equal(t, entity.OrderStatusPlaced, resp.Status)
	assert.True(t, decimal.NewFromInt(12000).Equal(resp.Total), "total = %s", resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Limón Tahití", resp.Items[0].ProductName)
}

func TestPlaceOrder_DescuentaStockSiHayInventario(t *testing.T) {
	fx := newOrderFixture()
	fx.inventory.items[invKey("s1", "p1")] = &entity.InventoryItem{
		ID: "i1", StoreID: "s1", ProductID: "p1", Stock: 5, IsActive: true,
	}

	_, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "s1",
		Items:   []dto.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, fx.inventory.items[invKey("s1", "p1")].Stock)
}

func TestPlaceOrder_StockInsuficiente(t *testing.T) {
	fx := newOrderFixture()
	fx.inventory.items[invKey("s1", "p1")] = &entity.InventoryItem{
		ID: "i1", StoreID: "s1", ProductID: "p1", Stock: 1, IsActive: true,
	}

	_, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "s1",
		Items:   []dto.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	// Rollback: el stock no cambia.
	assert.Equal(t, 1, fx.inventory.items[invKey("s1", "p1")].Stock)
}

func TestPlaceOrder_DesdeCarritoGuardadoYLoVacia(t *testing.T) {
	fx := newOrderFixture()
	items, _ := json.Marshal([]dto.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 2}})
	fx.carts.byUser["u1"] = &entity.Cart{UserID: "u1", Items: items, UpdatedAt: time.Now()}

	resp, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{StoreID: "s1"})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(7000).Equal(resp.Total))
	assert.Nil(t, fx.carts.byUser["u1"]) // carrito vaciado tras el checkout
}

func TestPlaceOrder_SinItemsNiCarrito(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{StoreID: "s1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlaceOrder_TiendaInexistente(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "no-existe",
		Items:   []dto.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrder_VarianteInexistente(t *testing.T) {
	fx := newOrderFixture()

	_, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "s1",
		Items:   []dto.CartItem{{ProductID: "p1", VariantID: "v-falsa", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_SoloCompradorUOwner(t *testing.T) {
	fx := newOrderFixture()

	placed, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "s1",
		Items:   []dto.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = fx.uc.GetByID(placed.ID, "u1")
	assert.NoError(t, err)
	_, err = fx.uc.GetByID(placed.ID, "owner1")
	assert.NoError(t, err)
	_, err = fx.uc.GetByID(placed.ID, "intruso")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReceipt(t *testing.T) {
	fx := newOrderFixture()

	placed, err := fx.uc.PlaceOrder(context.Background(), "u1", dto.PlaceOrderRequest{
		StoreID: "s1",
		Items:   []dto.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 1}},
	})
	require.NoError(t, err)

	pdf, err := fx.uc.Receipt(placed.ID, "u1")
	require.NoError(t, err)
	assert.Contains(t, string(pdf), "PED-000001")
	assert.Contains(t, string(pdf), "La Tienda")

	_, err = fx.uc.Receipt(placed.ID, "intruso")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
