package server

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"
)

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	// Add recovery middleware
	s.app.Use(recover.New())

	// Add logger middleware
	s.app.Use(logger.New())

	// Add CORS middleware for the dashboard frontend
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))
}

// requireAdmin gates the dashboard endpoints behind a bearer token issued by
// the admin identity service.
func (s *Server) requireAdmin(c fiber.Ctx) error {
	const prefix = "Bearer "

	header := c.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "UNAUTHORIZED",
				Message: "Missing bearer token",
			},
		})
	}

	claims, err := s.tokenVerifier.Verify(strings.TrimPrefix(header, prefix))
	if err != nil {
		log.Warn().Err(err).Msg("Rejected admin token")
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_TOKEN",
				Message: "Token is invalid or expired",
			},
		})
	}

	c.Locals("admin", claims)
	return c.Next()
}
