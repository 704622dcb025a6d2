package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/aurora/internal/models"
)

var (
	errMissingAuthCookie = errors.New("missing auth cookie")
	errInvalidAuthToken  = errors.New("invalid token")
	errExpiredAuthToken  = errors.New("token expired")
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func (handler *Handler) parseSessionToken(raw string) (*authClaims, error) {
	claims := &authClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return handler.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(authTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(handler.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errExpiredAuthToken
	case err != nil:
		return nil, errInvalidAuthToken
	}

	if claims.UserID == 0 || claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) {
		return nil, errInvalidAuthToken
	}
	return claims, nil
}

// authenticateRequest resolves the session cookie to the current profile.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.Profile, error) {
	tokenValue := strings.TrimSpace(c.Cookies(authCookieName))
	if tokenValue == "" {
		return nil, errMissingAuthCookie
	}

	claims, err := handler.parseSessionToken(tokenValue)
	if err != nil {
		return nil, err
	}

	handler.ensureDependencies()
	profile, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
