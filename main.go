package main

import (
	"net/http"

	"github.com/arieltecnotron/tecnobot-v1/auth"
	"github.com/arieltecnotron/tecnobot-v1/config"
	"github.com/arieltecnotron/tecnobot-v1/processor"
	"github.com/arieltecnotron/tecnobot-v1/server"
	"github.com/arieltecnotron/tecnobot-v1/store"
	"github.com/arieltecnotron/tecnobot-v1/whatsapp"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	var httpClient = http.Client{}

	whatsappClient := whatsapp.NewClient(
		cfg.WhatsAppToken,
		cfg.GraphAPIURL,
		cfg.PhoneNumberID,
		httpClient,
	)

	var conversations store.ConversationStore
	if cfg.RedisAddr != "" {
		conversations = store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ConversationTTL)
	} else {
		conversations = store.NewMemory(cfg.ConversationTTL)
	}
	defer conversations.Close()

	log.Info().
		Str("backend", conversations.Backend()).
		Dur("ttl", cfg.ConversationTTL).
		Msg("Conversation store ready")

	messageProcessor := processor.NewMessageProcessor(&whatsappClient, conversations)

	var tokenVerifier auth.Verifier
	if cfg.JWTSecret != "" {
		tokenVerifier = auth.NewJWTVerifier(cfg.JWTSecret)
	} else {
		log.Warn().Msg("JWT_SECRET not set, admin endpoints disabled")
	}

	srv := server.New(messageProcessor, conversations, cfg.VerifyToken, tokenVerifier)
	srv.Start(cfg.Port)
}
