package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamviewer/ecommerce-api/internal/models"
)

func TestCreateOrderItemAssignsID(t *testing.T) {
	svc := &OrderItemService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.CreateOrderItem(ctx, &models.OrderItem{
		OrderID:   1,
		ProductID: 2,
		Quantity:  3,
		UnitPrice: 4.5,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.FindOrderItemByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestFindOrderItemByIDNotFound(t *testing.T) {
	svc := &OrderItemService{Repo: newTestRepo(t)}

	_, err := svc.FindOrderItemByID(context.Background(), 77)

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, "Order item not found with id: 77", nfe.Error())
}

func TestUpdateOrderItemKeepsOrderID(t *testing.T) {
	svc := &OrderItemService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.CreateOrderItem(ctx, &models.OrderItem{
		OrderID:   1,
		ProductID: 2,
		Quantity:  3,
		UnitPrice: 4.5,
	})
	require.NoError(t, err)

	// the body tries to move the item to order 9; OrderID is not in the
	// update whitelist so it must stay at 1
	updated, err := svc.UpdateOrderItem(ctx, created.ID, &models.OrderItem{
		OrderID:   9,
		ProductID: 8,
		Quantity:  7,
		UnitPrice: 6.5,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, 1, updated.OrderID)
	require.Equal(t, 8, updated.ProductID)
	require.Equal(t, 7, updated.Quantity)
	require.Equal(t, 6.5, updated.UnitPrice)
}

func TestUpdateOrderItemNotFound(t *testing.T) {
	svc := &OrderItemService{Repo: newTestRepo(t)}

	_, err := svc.UpdateOrderItem(context.Background(), 5, &models.OrderItem{Quantity: 1})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, "Order item not found with id: 5", nfe.Error())
}

func TestDeleteOrderItem(t *testing.T) {
	svc := &OrderItemService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.CreateOrderItem(ctx, &models.OrderItem{OrderID: 1, ProductID: 1, Quantity: 1, UnitPrice: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrderItem(ctx, created.ID))
	require.NoError(t, svc.DeleteOrderItem(ctx, created.ID)) // idempotent

	_, err = svc.FindOrderItemByID(ctx, created.ID)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}
