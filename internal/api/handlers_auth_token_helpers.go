package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/aurora/internal/models"
)

const (
	authTokenIssuer      = "aurora"
	sessionTokenTTL      = 7 * 24 * time.Hour
	rememberedSessionTTL = 30 * 24 * time.Hour
)

func sessionTTL(rememberMe bool) time.Duration {
	if rememberMe {
		return rememberedSessionTTL
	}
	return sessionTokenTTL
}

// setAuthCookie issues a session token. Remembered sessions get a persistent
// cookie, the rest end with the browser session.
func (handler *Handler) setAuthCookie(c *fiber.Ctx, profile *models.Profile, rememberMe bool) error {
	ttl := sessionTTL(rememberMe)
	issuedAt := handler.now()

	token, err := handler.signSessionToken(profile.ID, issuedAt, ttl)
	if err != nil {
		return err
	}

	cookie := handler.authCookie(token)
	if rememberMe {
		cookie.Expires = issuedAt.Add(ttl)
	}
	c.Cookie(cookie)
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	cookie := handler.authCookie("")
	cookie.Expires = handler.now().Add(-time.Hour)
	c.Cookie(cookie)
}

func (handler *Handler) authCookie(value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	}
}

func (handler *Handler) signSessionToken(userID uint, issuedAt time.Time, ttl time.Duration) (string, error) {
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    authTokenIssuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}
