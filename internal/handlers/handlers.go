package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khetconnect/admin-panel/internal/khetapi"
	"github.com/khetconnect/admin-panel/internal/models"
	"github.com/khetconnect/admin-panel/internal/resource"
	"github.com/khetconnect/admin-panel/internal/session"
)

// PageHandler wires the pages to the API client and the per-resource
// controllers.
type PageHandler struct {
	API      *khetapi.Client
	Farmers  *resource.Controller[models.Farmer]
	Products *resource.Controller[models.Product]
	Orders   *resource.Orders
	Log      *slog.Logger
}

type basePage struct {
	Title  string
	Active string
	Error  string
}

// forcedLogout ends the session when the upstream rejects the operator's
// token. The gate re-reads cookies on every navigation, so expiring them here
// sends the next click to the login page too.
func forcedLogout(c echo.Context) error {
	session.Clear(c)
	return c.Redirect(http.StatusFound, "/login")
}

// isAuthRejection matches both a local fail-fast (no token at all) and an
// upstream 401 (stale token).
func isAuthRejection(err error) bool {
	if errors.Is(err, khetapi.ErrUnauthenticated) {
		return true
	}
	var he *khetapi.HTTPError
	return errors.As(err, &he) && he.Status == http.StatusUnauthorized
}

// userMessage turns an operation error into the line shown above the page.
func userMessage(err error) string {
	var he *khetapi.HTTPError
	if errors.As(err, &he) {
		return he.Message
	}
	if errors.Is(err, resource.ErrInFlight) {
		return "A previous request is still running, try again"
	}
	var mr *khetapi.MalformedResponseError
	if errors.As(err, &mr) {
		return "The server returned an unexpected response"
	}
	return "Something went wrong, please try again"
}
