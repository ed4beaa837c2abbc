package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) seedClient(t *testing.T, sellerID string) *Client {
	t.Helper()
	c, err := f.svc.CreateClient(asSeller(sellerID), CreateClientInput{
		Name: "Carlos", Surname: "Ruiz", Company: "Acme",
		Email: sellerID + "-client@acme.com",
	})
	require.NoError(t, err)
	return c
}

func TestCreateOrderDecrementsStock(t *testing.T) {
	f := newFixture()
	ctx := asSeller("seller-a")
	client := f.seedClient(t, "seller-a")

	p1, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Widget", Stock: 10, Price: 5})
	require.NoError(t, err)
	p2, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Gadget", Stock: 4, Price: 8})
	require.NoError(t, err)

	_, err = f.svc.CreateOrder(ctx, CreateOrderInput{
		ClientID: client.ID,
		Items: []OrderItemInput{
			{ProductID: p1.ID, Quantity: 3},
			{ProductID: p2.ID, Quantity: 4},
		},
		Total: 47,
	})
	require.NoError(t, err)

	got1, _ := f.svc.GetProduct(ctx, p1.ID)
	got2, _ := f.svc.GetProduct(ctx, p2.ID)
	assert.Equal(t, 7, got1.Stock)
	assert.Equal(t, 0, got2.Stock)
}

// A failure on a later line item leaves earlier decrements committed and
// the order unpersisted: reservations are per item, not all-or-nothing.
func TestCreateOrderInsufficientStockMidway(t *testing.T) {
	f := newFixture()
	ctx := asSeller("seller-a")
	client := f.seedClient(t, "seller-a")

	p1, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Widget", Stock: 5, Price: 5})
	require.NoError(t, err)
	p2, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Gadget", Stock: 1, Price: 8})
	require.NoError(t, err)

	_, err = f.svc.CreateOrder(ctx, CreateOrderInput{
		ClientID: client.ID,
		Items: []OrderItemInput{
			{ProductID: p1.ID, Quantity: 3},
			{ProductID: p2.ID, Quantity: 2},
		},
		Total: 31,
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Gadget") // names the offending product

	got1, _ := f.svc.GetProduct(ctx, p1.ID)
	got2, _ := f.svc.GetProduct(ctx, p2.ID)
	assert.Equal(t, 2, got1.Stock, "earlier item stays decremented")
	assert.Equal(t, 1, got2.Stock, "failing item untouched")

	orders, err := f.svc.ListSellerOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders, "order must not be persisted")
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	f := newFixture()
	ctx := asSeller("seller-a")
	client := f.seedClient(t, "seller-a")

	_, err := f.svc.CreateOrder(ctx, CreateOrderInput{
		ClientID: client.ID,
		Items:    []OrderItemInput{{ProductID: "no-such-product", Quantity: 1}},
		Total:    5,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderInvalidQuantity(t *testing.T) {
	f := newFixture()
	ctx := asSeller("seller-a")
	client := f.seedClient(t, "seller-a")
	p, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Widget", Stock: 5, Price: 5})
	require.NoError(t, err)

	_, err = f.svc.CreateOrder(ctx, CreateOrderInput{
		ClientID: client.ID,
		Items:    []OrderItemInput{{ProductID: p.ID, Quantity: 0}},
		Total:    0,
	})
	assert.Error(t, err)
}

// Updating an order with a revised item list consumes stock against the
// current level without releasing the original reservation.
func TestUpdateOrderAdditiveStockConsumption(t *testing.T) {
	f := newFixture()
	ctx := asSeller("seller-a")
	client := f.seedClient(t, "seller-a")

	p, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Widget", Stock: 10, Price: 5})
	require.NoError(t, err)

	o, err := f.svc.CreateOrder(ctx, CreateOrderInput{
		ClientID: client.ID,
		Items:    []OrderItemInput{{ProductID: p.ID, Quantity: 2}},
		Total:    10,
	})
	require.NoError(t, err)

	got, _ := f.svc.GetProduct(ctx, p.ID)
	require.Equal(t, 8, got.Stock)

	_, err = f.svc.UpdateOrder(ctx, o.ID, UpdateOrderInput{
		Items: []OrderItemInput{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	got, _ = f.svc.GetProduct(ctx, p.ID)
	assert.Equal(t, 6, got.Stock, "edit re-consumes stock, no diffing")
}

func TestUpdateOrderWithoutItemsLeavesStockAlone(t *testing.T) {
	f := newFixture()
	ctx := asSeller("seller-a")
	client := f.seedClient(t, "seller-a")

	p, err := f.svc.CreateProduct(ctx, CreateProductInput{Name: "Widget", Stock: 10, Price: 5})
	require.NoError(t, err)

	o, err := f.svc.CreateOrder(ctx, CreateOrderInput{
		ClientID: client.ID,
		Items:    []OrderItemInput{{ProductID: p.ID, Quantity: 2}},
		Total:    10,
	})
	require.NoError(t, err)

	completed := StatusCompleted
	updated, err := f.svc.UpdateOrder(ctx, o.ID, UpdateOrderInput{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Len(t, updated.Items, 1)

	got, _ := f.svc.GetProduct(ctx, p.ID)
	assert.Equal(t, 8, got.Stock)
}
