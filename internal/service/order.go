package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/teamviewer/ecommerce-api/internal/models"
	"github.com/teamviewer/ecommerce-api/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) FindAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.FindAllOrders(ctx)
}

func (s *OrderService) FindOrderByID(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.Repo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order", ID: id}
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = 0 // ids are store-assigned, never client-supplied
	return s.Repo.SaveOrder(ctx, order)
}

// UpdateOrder requires the order to exist and merges only the mutable
// fields onto the stored record. The path id always wins over any id in
// the body.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, order *models.Order) (*models.Order, error) {
	existing, err := s.FindOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.TotalAmount = order.TotalAmount
	return s.Repo.SaveOrder(ctx, existing)
}

// DeleteOrder is deliberately not existence-checked, an asymmetry with
// update: deleting an absent id silently succeeds.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.Repo.DeleteOrderByID(ctx, id)
}
