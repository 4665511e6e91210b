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

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicOrders, fmt.Sprint(event["orderID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", events.TopicOrders, "error", err)
	}
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("api", "orders.list")
	l.Info("list orders invoked")

	orders, err := h.Svc.FindAllOrders(ctx)
	if err != nil {
		l.Error("list orders failed", "error", err)
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "orders.get", "order_id", id)
	l.Info("get order invoked")

	order, err := h.Svc.FindOrderByID(ctx, id)
	if err != nil {
		var nfe *service.NotFoundError
		if errors.As(err, &nfe) {
			l.Warn("order not found")
		} else {
			l.Error("get order failed", "error", err)
		}
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("api", "orders.create")

	var order models.Order
	if err := c.Bind(&order); err != nil {
		l.Warn("create order rejected", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	l.Info("create order invoked", "total_amount", order.TotalAmount)

	created, err := h.Svc.CreateOrder(ctx, &order)
	if err != nil {
		l.Error("create order failed", "error", err)
		return err
	}

	h.publish(c, map[string]any{"type": "order_created", "orderID": created.ID, "totalAmount": created.TotalAmount})
	return c.JSON(http.StatusOK, created)
}

func (h *OrderHTTP) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "orders.update", "order_id", id)

	var order models.Order
	if err := c.Bind(&order); err != nil {
		l.Warn("update order rejected", "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	l.Info("update order invoked", "total_amount", order.TotalAmount)

	updated, err := h.Svc.UpdateOrder(ctx, id, &order)
	if err != nil {
		var nfe *service.NotFoundError
		if errors.As(err, &nfe) {
			l.Warn("order not found")
		} else {
			l.Error("update order failed", "error", err)
		}
		return err
	}

	h.publish(c, map[string]any{"type": "order_updated", "orderID": updated.ID, "totalAmount": updated.TotalAmount})
	return c.JSON(http.StatusOK, updated)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	l := logging.FromContext(ctx).With("api", "orders.delete", "order_id", id)
	l.Info("delete order invoked")

	if err := h.Svc.DeleteOrder(ctx, id); err != nil {
		l.Error("delete order failed", "error", err)
		return err
	}

	h.publish(c, map[string]any{"type": "order_deleted", "orderID": id})
	return c.NoContent(http.StatusOK)
}
