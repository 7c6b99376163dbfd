// Package session implements the cookie-based session guard. A signed token
// in an HttpOnly cookie carries the role and identity; requests that fail
// the guard are redirected to the role's login entry point rather than
// receiving an error, which is the UI-facing contract of the app.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/util/token"
)

const (
	CookieName = "biblioteca_session"

	RoleUser  = "user"
	RoleAdmin = "admin"

	UserLoginPath  = "/login"
	AdminLoginPath = "/admin/login"

	ttl = 24 * time.Hour
)

// Start issues a session token for the role and sets the cookie. login is
// empty for the admin session.
func Start(c echo.Context, secret, login, name, role string) error {
	tok, err := token.Issue(secret, login, name, role, ttl)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// End expires the session cookie.
func End(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// Guard parses and verifies the session cookie; missing, expired, or
// tampered tokens redirect to loginPath.
func Guard(secret, loginPath string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(secret),
		TokenLookup:   "cookie:" + CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		ErrorHandler: func(c echo.Context, err error) error {
			return c.Redirect(http.StatusSeeOther, loginPath)
		},
	})
}

// RequireRole runs after Guard, checks the session role, and stashes the
// identity under "login" and "name" in the echo context. The roles are
// disjoint: an admin session does not pass a user gate or vice versa.
func RequireRole(role, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, ok := c.Get("user").(*jwt.Token)
			if !ok || tok == nil {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			if r, _ := claims["role"].(string); r != role {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			login, _ := claims["sub"].(string)
			name, _ := claims["name"].(string)
			c.Set("login", login)
			c.Set("name", name)
			return next(c)
		}
	}
}

// Peek inspects the cookie without gating. The public contact form uses it
// to record who submitted when a user session happens to exist.
func Peek(c echo.Context, secret string) (login, name, role string) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", "", ""
	}
	claims, err := token.Parse(ck.Value, secret)
	if err != nil {
		return "", "", ""
	}
	login, _ = claims["sub"].(string)
	name, _ = claims["name"].(string)
	role, _ = claims["role"].(string)
	return login, name, role
}
