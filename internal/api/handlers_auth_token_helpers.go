package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const authTokenTTL = 7 * 24 * time.Hour

func (handler *Handler) setAuthCookie(c *fiber.Ctx) error {
	token, err := handler.buildToken(authTokenTTL)
	if err != nil {
		return err
	}
	handler.writeAuthCookie(c, token, time.Now().Add(authTokenTTL))
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	handler.writeAuthCookie(c, "", time.Now().Add(-time.Hour))
}

func (handler *Handler) writeAuthCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  expires,
	})
}

func (handler *Handler) buildToken(ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = authTokenTTL
	}

	now := time.Now()
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}
