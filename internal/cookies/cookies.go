// Package cookies carries the two session tokens in the browser's cookie jar.
// The names (including the misspelled refresh cookie) match what the deployed
// Khet Connect API issues, so an existing operator session keeps working.
package cookies

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	AccessToken  = "Access_token"
	RefreshToken = "Refress_token"
)

// Get reads one cookie out of a raw Cookie header string. Entries are split on
// "; " and each entry on the first "=" only, so values with embedded "=" stay
// intact. Values are URL-decoded; a value that fails decoding is returned raw.
func Get(cookieHeader, name string) (string, bool) {
	if cookieHeader == "" {
		return "", false
	}
	for _, entry := range strings.Split(cookieHeader, "; ") {
		key, val, found := strings.Cut(entry, "=")
		if !found || key != name {
			continue
		}
		if decoded, err := url.QueryUnescape(val); err == nil {
			return decoded, true
		}
		return val, true
	}
	return "", false
}

func CreateCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpireCookie is the deletion idiom: empty value, MaxAge<0.
func ExpireCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
