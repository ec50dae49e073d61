package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashPayload carries one-shot status messages between a redirect and the
// next page render. Values are locale keys, translated at render time.
type FlashPayload struct {
	AuthError       string `json:"auth_error,omitempty"`
	InputError      string `json:"input_error,omitempty"`
	InputSuccess    string `json:"input_success,omitempty"`
	SettingsError   string `json:"settings_error,omitempty"`
	SettingsSuccess string `json:"settings_success,omitempty"`
}

func (payload *FlashPayload) fields() []*string {
	return []*string{
		&payload.AuthError,
		&payload.InputError,
		&payload.InputSuccess,
		&payload.SettingsError,
		&payload.SettingsSuccess,
	}
}

func (payload FlashPayload) normalized() FlashPayload {
	for _, field := range payload.fields() {
		*field = strings.TrimSpace(*field)
	}
	return payload
}

func (payload FlashPayload) empty() bool {
	for _, field := range payload.fields() {
		if *field != "" {
			return false
		}
	}
	return true
}

func setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload = payload.normalized()
	if payload.empty() {
		clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	writeFlashCookie(c, base64.RawURLEncoding.EncodeToString(serialized), time.Now().Add(5*time.Minute))
}

func popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return payload.normalized()
}

func clearFlashCookie(c *fiber.Ctx) {
	writeFlashCookie(c, "", time.Now().Add(-time.Hour))
}

func writeFlashCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  expires,
	})
}
