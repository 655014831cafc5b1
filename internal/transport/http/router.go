package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/khetconnect/admin-panel/internal/handlers"
	"github.com/khetconnect/admin-panel/internal/session"
)

type Deps struct {
	PageHandler *handlers.PageHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.GET("/login", d.PageHandler.LoginPage)
	e.POST("/login", d.PageHandler.Login)
	e.POST("/logout", d.PageHandler.Logout)

	// Every protected page sits behind the gate; the check runs per request.
	protected := e.Group("", session.RequireLogin)

	protected.GET("/", d.PageHandler.OrdersPage)
	protected.POST("/orders/:id/complete", d.PageHandler.CompleteOrder)

	protected.GET("/product", d.PageHandler.ProductsPage)
	protected.POST("/product", d.PageHandler.CreateProduct)
	protected.POST("/product/:id/delete", d.PageHandler.DeleteProduct)

	protected.GET("/farmers", d.PageHandler.FarmersPage)
	protected.POST("/farmers", d.PageHandler.CreateFarmer)
	protected.POST("/farmers/:id/delete", d.PageHandler.DeleteFarmer)
}
