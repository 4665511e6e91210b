package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teamviewer/ecommerce-api/internal/models"
)

func TestCreateProductAssignsID(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &models.Product{
		Name:        "test_name",
		Description: "test_description",
		Stock:       5,
		Price:       9.99,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.FindProductByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestFindProductByIDNotFound(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}

	_, err := svc.FindProductByID(context.Background(), 999)

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, "Product not found with id: 999", nfe.Error())
}

func TestUpdateProductReplacesAllMutableFields(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &models.Product{
		Name:        "test_name",
		Description: "test_description",
		Stock:       5,
		Price:       9.99,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, &models.Product{
		ID:          42,
		Name:        "new_name",
		Description: "new_description",
		Stock:       1,
		Price:       19.99,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "new_name", updated.Name)
	require.Equal(t, "new_description", updated.Description)
	require.Equal(t, 1, updated.Stock)
	require.Equal(t, 19.99, updated.Price)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}

	_, err := svc.UpdateProduct(context.Background(), 888, &models.Product{Name: "x"})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, "Product not found with id: 888", nfe.Error())
}

func TestDeleteProductThenGetNotFound(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, &models.Product{Name: "n", Description: "d", Price: 1})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.FindProductByID(ctx, created.ID)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestFindAllProductsCount(t *testing.T) {
	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	products, err := svc.FindAllProducts(ctx)
	require.NoError(t, err)
	require.Empty(t, products)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateProduct(ctx, &models.Product{Name: "n", Description: "d", Price: 1})
		require.NoError(t, err)
	}

	products, err = svc.FindAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
}
