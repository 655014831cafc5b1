package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khetconnect/admin-panel/internal/models"
	"github.com/khetconnect/admin-panel/internal/resource"
	"github.com/khetconnect/admin-panel/internal/session"
)

type ordersPage struct {
	basePage
	Orders []models.Order
	Stats  resource.Stats
}

func (h *PageHandler) renderOrders(c echo.Context, errMsg string) error {
	return c.Render(http.StatusOK, "orders", ordersPage{
		basePage: basePage{Title: "Orders", Active: "orders", Error: errMsg},
		// Display() reverses a copy for newest-first rows; Stats() runs on
		// the collection in server order.
		Orders: h.Orders.Display(),
		Stats:  h.Orders.Stats(),
	})
}

func (h *PageHandler) OrdersPage(c echo.Context) error {
	errMsg := ""
	if err := h.Orders.Refresh(c.Request().Context()); err != nil {
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		errMsg = userMessage(err)
	}
	return h.renderOrders(c, errMsg)
}

func (h *PageHandler) CompleteOrder(c echo.Context) error {
	token := session.FromContext(c).AccessToken
	id := c.Param("id")

	if err := h.Orders.Complete(c.Request().Context(), token, id); err != nil {
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		h.Log.Error("complete order failed", "id", id, "err", err)
		return h.renderOrders(c, userMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
