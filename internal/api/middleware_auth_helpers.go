package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// The app has exactly one account, so session tokens carry a fixed subject
// instead of a user id.
const sessionSubject = "owner"

type authClaims struct {
	jwt.RegisteredClaims
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) error {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims,
		func(token *jwt.Token) (interface{}, error) { return handler.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(sessionSubject),
	)
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}

	return nil
}
