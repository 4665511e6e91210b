package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/teamviewer/ecommerce-api/internal/events"
	"github.com/teamviewer/ecommerce-api/internal/logging"
	"github.com/teamviewer/ecommerce-api/internal/models"
	"github.com/teamviewer/ecommerce-api/internal/service"
)

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *events.Producer
}

func (h *ProductHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicProducts, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", events.TopicProducts, "error", err)
	}
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("api", "products.list")
	l.Info("list products invoked")

	products, err := h.Svc.FindAllProducts(ctx)
	if err != nil {
		l.Error("list products failed", "error", err)
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "products.get", "product_id", id)
	l.Info("get product invoked")

	product, err := h.Svc.FindProductByID(ctx, id)
	if err != nil {
		var nfe *service.NotFoundError
		if errors.As(err, &nfe) {
			l.Warn("product not found")
		} else {
			l.Error("get product failed", "error", err)
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("api", "products.create")

	var product models.Product
	if err := c.Bind(&product); err != nil {
		l.Warn("create product rejected", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	l.Info("create product invoked", "name", product.Name)

	created, err := h.Svc.CreateProduct(ctx, &product)
	if err != nil {
		l.Error("create product failed", "error", err)
		return err
	}

	h.publish(c, map[string]any{"type": "product_created", "productID": created.ID, "name": created.Name})
	return c.JSON(http.StatusOK, created)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "products.update", "product_id", id)

	var product models.Product
	if err := c.Bind(&product); err != nil {
		l.Warn("update product rejected", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	l.Info("update product invoked", "name", product.Name)

	updated, err := h.Svc.UpdateProduct(ctx, id, &product)
	if err != nil {
		var nfe *service.NotFoundError
		if errors.As(err, &nfe) {
			l.Warn("product not found")
		} else {
			l.Error("update product failed", "error", err)
		}
		return err
	}

	h.publish(c, map[string]any{"type": "product_updated", "productID": updated.ID, "name": updated.Name})
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "products.delete", "product_id", id)
	l.Info("delete product invoked")

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		l.Error("delete product failed", "error", err)
		return err
	}

	h.publish(c, map[string]any{"type": "product_deleted", "productID": id})
	return c.NoContent(http.StatusOK)
}
