package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "hondana_session"
	// CookieMaxAge is how long the cookie is valid.
	CookieMaxAge = 7 * 24 * time.Hour // 7 days
)

type handler struct {
	authService *Service
}

// login handles user login. The token is returned in the response body and
// also set as an HTTP-only cookie for browser clients.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authService.Authenticate(ctx, params.Username, params.Password)
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, token, int(CookieMaxAge.Seconds()))

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// logout clears the session cookie.
func (h *handler) logout(c echo.Context) error {
	setSessionCookie(c, "", -1)

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// me returns the current authenticated user's info.
func (h *handler) me(c echo.Context) error {
	ctx := c.Request().Context()

	token := extractToken(c)
	if token == "" {
		return errors.WithStack(c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"}))
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		return errors.WithStack(c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"}))
	}

	user, err := h.authService.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return errors.WithStack(c.JSON(http.StatusUnauthorized, map[string]string{"error": "User not found"}))
	}

	return c.JSON(http.StatusOK, user)
}

func setSessionCookie(c echo.Context, token string, maxAge int) {
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	}
	c.SetCookie(cookie)
}
