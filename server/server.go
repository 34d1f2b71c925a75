package server

import (
	"github.com/arieltecnotron/tecnobot-v1/auth"
	"github.com/arieltecnotron/tecnobot-v1/processor"
	"github.com/arieltecnotron/tecnobot-v1/store"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type Server struct {
	app              *fiber.App
	messageProcessor *processor.MessageProcessor
	conversations    store.ConversationStore
	verifyToken      string
	tokenVerifier    auth.Verifier
}

// New builds the HTTP surface: the webhook endpoints, the health check and,
// when a token verifier is supplied, the admin dashboard API.
func New(messageProcessor *processor.MessageProcessor, conversations store.ConversationStore, verifyToken string, tokenVerifier auth.Verifier) *Server {
	app := fiber.New()

	server := &Server{
		app:              app,
		messageProcessor: messageProcessor,
		conversations:    conversations,
		verifyToken:      verifyToken,
		tokenVerifier:    tokenVerifier,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting tecnobot server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
