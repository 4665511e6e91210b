package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/teamviewer/ecommerce-api/internal/models"
	"github.com/teamviewer/ecommerce-api/internal/repo"
)

type OrderItemService struct {
	Repo *repo.GormRepo
}

func (s *OrderItemService) FindAllOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	return s.Repo.FindAllOrderItems(ctx)
}

func (s *OrderItemService) FindOrderItemByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	item, err := s.Repo.FindOrderItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order item", ID: id}
		}
		return nil, err
	}
	return item, nil
}

func (s *OrderItemService) CreateOrderItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	item.ID = 0
	return s.Repo.SaveOrderItem(ctx, item)
}

// UpdateOrderItem merges product id, quantity and unit price onto the
// stored record. OrderID is not part of the merge: an item cannot be moved
// to a different order through update.
func (s *OrderItemService) UpdateOrderItem(ctx context.Context, id uint, item *models.OrderItem) (*models.OrderItem, error) {
	existing, err := s.FindOrderItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.ProductID = item.ProductID
	existing.Quantity = item.Quantity
	existing.UnitPrice = item.UnitPrice
	return s.Repo.SaveOrderItem(ctx, existing)
}

func (s *OrderItemService) DeleteOrderItem(ctx context.Context, id uint) error {
	return s.Repo.DeleteOrderItemByID(ctx, id)
}
