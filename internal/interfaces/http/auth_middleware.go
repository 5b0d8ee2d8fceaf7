package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Dispensario-api/internal/application/dto"
	"github.com/jhoicas/Dispensario-api/pkg/jwt"
)

// Locals keys para UserID y DispensaryID en Fiber.
const (
	LocalUserID       = "user_id"
	LocalDispensaryID = "dispensary_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y DispensaryID a c.Locals.
// El token es el segundo segmento del header Authorization ("Bearer <token>").
// Sin token -> 401 y se corta la cadena inmediatamente (un solo response).
// Token inválido, malformado o expirado -> 400.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var token string
		if parts := strings.Fields(c.Get("Authorization")); len(parts) >= 2 {
			token = parts[1]
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("No token, authorization denied"))
		}
		userID, dispensaryID, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Token is not valid"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalDispensaryID, dispensaryID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetDispensaryID devuelve el DispensaryID del contexto (después del middleware de auth).
func GetDispensaryID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalDispensaryID).(string)
	return s
}
