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

type OrderItemHTTP struct {
	Svc      *service.OrderItemService
	Producer *events.Producer
}

func (h *OrderItemHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderItems, fmt.Sprint(event["orderItemID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", events.TopicOrderItems, "error", err)
	}
}

func (h *OrderItemHTTP) ListOrderItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("api", "order_items.list")
	l.Info("list order items invoked")

	items, err := h.Svc.FindAllOrderItems(ctx)
	if err != nil {
		l.Error("list order items failed", "error", err)
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderItemHTTP) GetOrderItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "order_items.get", "order_item_id", id)
	l.Info("get order item invoked")

	item, err := h.Svc.FindOrderItemByID(ctx, id)
	if err != nil {
		var nfe *service.NotFoundError
		if errors.As(err, &nfe) {
			l.Warn("order item not found")
		} else {
			l.Error("get order item failed", "error", err)
		}
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *OrderItemHTTP) CreateOrderItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("api", "order_items.create")

	var item models.OrderItem
	if err := c.Bind(&item); err != nil {
		l.Warn("create order item rejected", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	l.Info("create order item invoked", "order_id", item.OrderID, "product_id", item.ProductID)

	created, err := h.Svc.CreateOrderItem(ctx, &item)
	if err != nil {
		l.Error("create order item failed", "error", err)
		return err
	}

	h.publish(c, map[string]any{"type": "order_item_created", "orderItemID": created.ID, "orderID": created.OrderID})
	return c.JSON(http.StatusOK, created)
}

func (h *OrderItemHTTP) UpdateOrderItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "order_items.update", "order_item_id", id)

	var item models.OrderItem
	if err := c.Bind(&item); err != nil {
		l.Warn("update order item rejected", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	l.Info("update order item invoked", "product_id", item.ProductID, "quantity", item.Quantity)

	updated, err := h.Svc.UpdateOrderItem(ctx, id, &item)
	if err != nil {
		var nfe *service.NotFoundError
		if errors.As(err, &nfe) {
			l.Warn("order item not found")
		} else {
			l.Error("update order item failed", "error", err)
		}
		return err
	}

	h.publish(c, map[string]any{"type": "order_item_updated", "orderItemID": updated.ID, "orderID": updated.OrderID})
	return c.JSON(http.StatusOK, updated)
}

func (h *OrderItemHTTP) DeleteOrderItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "order_items.delete", "order_item_id", id)
	l.Info("delete order item invoked")

	if err := h.Svc.DeleteOrderItem(ctx, id); err != nil {
		l.Error("delete order item failed", "error", err)
		return err
	}

	h.publish(c, map[string]any{"type": "order_item_deleted", "orderItemID": id})
	return c.NoContent(http.StatusOK)
}
