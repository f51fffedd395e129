package middleware

import (
	"go-staffhub/pkg/config"
)

// CreateAuthCookieHeader builds the Set-Cookie header that establishes a session.
func CreateAuthCookieHeader(token string) string {
	cookie := AuthCookieName + "=" + token + "; Path=/"
	if domain := config.GetCookieDomain(); domain != "" {
		cookie += "; Domain=" + domain
	}
	cookie += "; Max-Age=86400; HttpOnly; Secure; SameSite=Lax"
	return cookie
}

// CreateClearCookieHeader builds the Set-Cookie header that ends a session.
func CreateClearCookieHeader() string {
	cookie := AuthCookieName + "=; Path=/"
	if domain := config.GetCookieDomain(); domain != "" {
		cookie += "; Domain=" + domain
	}
	cookie += "; Max-Age=0; HttpOnly; Secure; SameSite=Lax"
	return cookie
}
