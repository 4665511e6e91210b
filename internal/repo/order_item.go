package repo

import (
	"context"

	"github.com/teamviewer/ecommerce-api/internal/models"
)

func (r *GormRepo) FindAllOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0)
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) FindOrderItemByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	item := models.OrderItem{}
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) SaveOrderItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	if err := r.DB.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *GormRepo) DeleteOrderItemByID(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.OrderItem{}, id).Error
}
