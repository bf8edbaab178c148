package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// FormsPathPrefix is where the server-rendered resource forms are mounted
const FormsPathPrefix = "/ui"

const (
	apiContentSecurityPolicy = "default-src 'self'"
	// form pages carry an inline stylesheet and post back to themselves
	formContentSecurityPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline'; form-action 'self'; frame-ancestors 'none'"
)

var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
	// banking records must not be cached by intermediaries
	"Cache-Control": "no-store, no-cache, must-revalidate, private",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

// SecurityHeaders sets the hardening headers on every response
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			h.Set("Content-Security-Policy", contentSecurityPolicy(c.Request().URL.Path))
			return next(c)
		}
	}
}

func contentSecurityPolicy(path string) string {
	if path == FormsPathPrefix || strings.HasPrefix(path, FormsPathPrefix+"/") {
		return formContentSecurityPolicy
	}
	return apiContentSecurityPolicy
}
