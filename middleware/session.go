package middleware

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"tattoo-booking/logger"
	"tattoo-booking/services/wizard"
)

const sessionCookie = "wizard_session"

// SessionClaims carries the wizard session id inside the signed cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func sessionSecret() []byte {
	return []byte(os.Getenv("SESSION_SECRET"))
}

// SignSessionToken issues an HS256 token binding the session id.
func SignSessionToken(sessionID string) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// VerifySessionToken parses the cookie token and returns the session id.
func VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.SessionID, nil
}

// WizardSession resolves the caller's wizard session from the signed
// cookie, creating one (and setting the cookie) when absent or stale.
// The session lands in c.Locals("session").
func WizardSession(registry *wizard.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sessionID string
		if cookie := c.Cookies(sessionCookie); cookie != "" {
			id, err := VerifySessionToken(cookie)
			if err != nil {
				logger.Warning("Stale session cookie, issuing a new session")
			} else {
				sessionID = id
			}
		}

		s := registry.GetOrCreate(sessionID)
		if s.ID != sessionID {
			signed, err := SignSessionToken(s.ID)
			if err != nil {
				logger.Error("Failed to sign session token", err)
				return c.Status(fiber.StatusInternalServerError).SendString("session error")
			}
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    signed,
				HTTPOnly: true,
				SameSite: "Lax",
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}

		c.Locals("session", s)
		return c.Next()
	}
}

// SessionFromCtx pulls the wizard session set by WizardSession.
func SessionFromCtx(c *fiber.Ctx) (*wizard.Session, bool) {
	s, ok := c.Locals("session").(*wizard.Session)
	return s, ok
}
