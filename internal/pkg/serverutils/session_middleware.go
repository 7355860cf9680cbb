package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionMiddleware resolves the caller's session identity. A signed
// bearer token wins; anonymous callers may pin a session with the
// X-Session-Id header instead. The resolved id lands in Locals("session_id").
func SessionMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid claims"))
		}

		userId, _ := claims["user_id"].(string)
		if userId == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid claims"))
		}
		ctx.Locals("session_id", userId)
		return ctx.Next()
	}

	if sessionId := ctx.Get("X-Session-Id"); sessionId != "" {
		ctx.Locals("session_id", sessionId)
		return ctx.Next()
	}

	return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing session"))
}
