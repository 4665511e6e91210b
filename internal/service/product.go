package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/teamviewer/ecommerce-api/internal/models"
	"github.com/teamviewer/ecommerce-api/internal/repo"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) FindAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.FindAllProducts(ctx)
}

func (s *ProductService) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Product", ID: id}
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.ID = 0
	return s.Repo.SaveProduct(ctx, product)
}

// UpdateProduct replaces every mutable field, a wider merge than the other
// two resources have.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, product *models.Product) (*models.Product, error) {
	existing, err := s.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Stock = product.Stock
	return s.Repo.SaveProduct(ctx, existing)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.Repo.DeleteProductByID(ctx, id)
}
