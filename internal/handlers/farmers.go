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

type farmersPage struct {
	basePage
	Farmers     []models.Farmer
	Form        url.Values
	FieldErrors map[string]string
}

func (h *PageHandler) renderFarmers(c echo.Context, form url.Values, fieldErrors map[string]string, errMsg string) error {
	return c.Render(http.StatusOK, "farmers", farmersPage{
		basePage:    basePage{Title: "Farmers", Active: "farmers", Error: errMsg},
		Farmers:     h.Farmers.Records(),
		Form:        form,
		FieldErrors: fieldErrors,
	})
}

func (h *PageHandler) FarmersPage(c echo.Context) error {
	errMsg := ""
	if err := h.Farmers.Refresh(c.Request().Context()); err != nil {
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		errMsg = userMessage(err)
	}
	return h.renderFarmers(c, url.Values{}, nil, errMsg)
}

// CreateFarmer validates and submits the add form. Validation failures never
// reach the network; the form comes back filled in so the operator can fix
// the one bad field.
func (h *PageHandler) CreateFarmer(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return h.renderFarmers(c, url.Values{}, nil, "Could not read the form")
	}

	if err := h.Farmers.Create(c.Request().Context(), form); err != nil {
		var ve *resource.ValidationError
		if errors.As(err, &ve) {
			return h.renderFarmers(c, form, ve.Fields, "")
		}
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		h.Log.Error("add farmer failed", "err", err)
		return h.renderFarmers(c, form, nil, userMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/farmers")
}

func (h *PageHandler) DeleteFarmer(c echo.Context) error {
	token := session.FromContext(c).AccessToken
	id := c.Param("id")

	if err := h.Farmers.Delete(c.Request().Context(), token, id); err != nil {
		if isAuthRejection(err) {
			return forcedLogout(c)
		}
		h.Log.Error("delete farmer failed", "id", id, "err", err)
		return h.renderFarmers(c, url.Values{}, nil, userMessage(err))
	}
	return c.Redirect(http.StatusSeeOther, "/farmers")
}
