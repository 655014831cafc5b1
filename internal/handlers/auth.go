package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khetconnect/admin-panel/internal/session"
)

type loginPage struct {
	Error string
	Email string
}

func (h *PageHandler) LoginPage(c echo.Context) error {
	if session.FromContext(c).Valid() {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "login", loginPage{})
}

// Login submits the credentials to the remote auth endpoint. On success both
// tokens land in cookies and the operator is sent to the orders page; on
// failure the server message is shown and the email field is preserved.
func (h *PageHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	tokens, err := h.API.Login(c.Request().Context(), email, password)
	if err != nil {
		h.Log.Warn("login failed", "email", email, "err", err)
		return c.Render(http.StatusUnauthorized, "login", loginPage{
			Error: userMessage(err),
			Email: email,
		})
	}

	session.Establish(c, session.Session{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears both cookies. There is no revoke call on the upstream.
func (h *PageHandler) Logout(c echo.Context) error {
	session.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
