package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	OrderHandler     *OrderHTTP
	OrderItemHandler *OrderItemHTTP
	ProductHandler   *ProductHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	orders := api.Group("/orders")
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	items := api.Group("/order-items")
	items.GET("", d.OrderItemHandler.ListOrderItems)
	items.GET("/:id", d.OrderItemHandler.GetOrderItem)
	items.POST("", d.OrderItemHandler.CreateOrderItem)
	items.PUT("/:id", d.OrderItemHandler.UpdateOrderItem)
	items.DELETE("/:id", d.OrderItemHandler.DeleteOrderItem)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)
}
