package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khetconnect/admin-panel/internal/cookies"
)

// Session is the pair of tokens the browser carries. Validity is a presence
// check only: the panel never inspects the token contents, the upstream API is
// the authority and answers 401 when a token is stale.
type Session struct {
	AccessToken  string
	RefreshToken string
}

func (s Session) Valid() bool {
	return s.AccessToken != ""
}

// FromRequest reads both token cookies off the incoming request. It is called
// on every navigation, never cached, so a logout in another tab takes effect
// on the next click.
func FromRequest(r *http.Request) Session {
	header := r.Header.Get("Cookie")
	access, _ := cookies.Get(header, cookies.AccessToken)
	refresh, _ := cookies.Get(header, cookies.RefreshToken)
	return Session{AccessToken: access, RefreshToken: refresh}
}

func FromContext(c echo.Context) Session {
	return FromRequest(c.Request())
}

// Establish writes both tokens to the response.
func Establish(c echo.Context, s Session) {
	c.SetCookie(cookies.CreateCookie(cookies.AccessToken, s.AccessToken))
	c.SetCookie(cookies.CreateCookie(cookies.RefreshToken, s.RefreshToken))
}

// Clear expires both tokens. Logout is client-side only, there is no revoke
// call on the upstream API.
func Clear(c echo.Context) {
	c.SetCookie(cookies.ExpireCookie(cookies.AccessToken))
	c.SetCookie(cookies.ExpireCookie(cookies.RefreshToken))
}

// RequireLogin guards the protected pages. Anonymous visitors are redirected
// to the login page and the wrapped handler never runs.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !FromContext(c).Valid() {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
