package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/khetconnect/admin-panel/internal/models"
	"github.com/khetconnect/admin-panel/internal/resource"
	"github.com/khetconnect/admin-panel/internal/session"
)

var productCategories = []string{"Fruits", "Vegetables", "Dairy", "Grains"}

type productsPage struct {
	basePage
	Products    []models.Product
	Categories  []string
	Form        url.Values
	FieldErrors map[string]string
}

func (h *PageHandler) renderProducts(c echo.Context, form url.Values, fieldErrors map[string]string, errMsg string) error {
	return c.Render(http.StatusOK, "products", productsPage{
		basePage:    basePage{Title: "Products", Active: "products", Error: errMsg},
		Products:    h.Products.Records(),
		Categories:  productCategories,
		Form:        form,
		FieldErrors: fieldErrors,
	})
}

func (h *PageHandler) ProductsPage(c echo.Context) error {
	errMsg := ""
	if err := h.Products.Refresh(c.Request().Context()); err != nil {
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		errMsg = userMessage(err)
	}
	return h.renderProducts(c, url.Values{}, nil, errMsg)
}

func (h *PageHandler) CreateProduct(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return h.renderProducts(c, url.Values{}, nil, "Could not read the form")
	}

	if err := h.Products.Create(c.Request().Context(), form); err != nil {
		var ve *resource.ValidationError
		if errors.As(err, &ve) {
			return h.renderProducts(c, form, ve.Fields, "")
		}
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		h.Log.Error("add product failed", "err", err)
		return h.renderProducts(c, form, nil, userMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/product")
}

func (h *PageHandler) DeleteProduct(c echo.Context) error {
	token := session.FromContext(c).AccessToken
	id := c.Param("id")

	if err := h.Products.Delete(c.Request().Context(), token, id); err != nil {
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		h.Log.Error("delete product failed", "id", id, "err", err)
		return h.renderProducts(c, url.Values{}, nil, userMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/product")
}
