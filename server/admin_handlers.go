package server

import (
	"sort"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// adminConversationsHandler handles GET /admin/conversations
func (s *Server) adminConversationsHandler(c fiber.Ctx) error {
	senderIDs, err := s.conversations.ActiveSenders(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing conversations")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "Failed to list conversations",
			},
		})
	}

	summaries := make([]ConversationSummary, 0, len(senderIDs))
	for _, senderID := range senderIDs {
		state, found, err := s.conversations.Get(c.Context(), senderID)
		if err != nil || !found {
			// A conversation can finish or expire between the listing and
			// the lookup; skip it.
			continue
		}
		summaries = append(summaries, ConversationSummary{
			SenderID:   senderID,
			Step:       string(state.Step),
			Name:       state.Data.Name,
			TopSize:    state.Data.TopSize,
			BottomSize: state.Data.BottomSize,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SenderID < summaries[j].SenderID
	})

	return c.JSON(summaries)
}

// adminConversationHandler handles GET /admin/conversations/{senderId}
func (s *Server) adminConversationHandler(c fiber.Ctx) error {
	senderID := c.Params("senderId")
	if senderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_PARAMETER",
				Message: "senderId parameter is required",
			},
		})
	}

	state, found, err := s.conversations.Get(c.Context(), senderID)
	if err != nil {
		log.Error().Err(err).Str("sender_id", senderID).Msg("Error loading conversation")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "Failed to load conversation",
			},
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "No active conversation for this sender",
			},
		})
	}

	return c.JSON(ConversationSummary{
		SenderID:   senderID,
		Step:       string(state.Step),
		Name:       state.Data.Name,
		TopSize:    state.Data.TopSize,
		BottomSize: state.Data.BottomSize,
	})
}
