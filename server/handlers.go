package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// verifyWebhookHandler answers the platform's one-time subscription handshake.
// Missing parameters are rejected like mismatched ones; leaving the request
// unanswered would only hide a misconfigured subscription.
func (s *Server) verifyWebhookHandler(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken {
		log.Info().Msg("Webhook verified successfully")
		return c.Status(fiber.StatusOK).SendString(challenge)
	}

	log.Warn().Str("mode", mode).Msg("Webhook verification rejected")
	return c.SendStatus(fiber.StatusForbidden)
}

// webhookHandler receives one event delivery. Payloads without a text message
// (receipts, media, empty envelopes) are acked without touching any state so
// the platform does not retry them.
func (s *Server) webhookHandler(c fiber.Ctx) error {
	var payload WebhookPayload
	if err := c.Bind().JSON(&payload); err != nil {
		log.Error().Err(err).Msg("Error parsing webhook payload")
		return c.SendStatus(fiber.StatusNotFound)
	}

	if payload.Object == "" {
		return c.SendStatus(fiber.StatusNotFound)
	}

	message, ok := payload.firstTextMessage()
	if !ok {
		return c.SendStatus(fiber.StatusOK)
	}

	log.Info().
		Str("sender_id", message.From).
		Str("message_id", message.ID).
		Msg("Received inbound message")

	// Processing runs synchronously: the ack must reflect the outcome so the
	// platform retries failed deliveries.
	if err := s.messageProcessor.ProcessMessage(c.Context(), message.From, message.Text.Body); err != nil {
		log.Error().
			Err(err).
			Str("sender_id", message.From).
			Msg("Error processing message")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	status := s.messageProcessor.GetProcessorStatus()
	return c.JSON(status)
}
