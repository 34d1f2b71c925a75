package server

func (s *Server) setupRoutes() {
	s.app.Get("/webhook", s.verifyWebhookHandler)
	s.app.Post("/webhook", s.webhookHandler)
	s.app.Get("/healthz", s.healthCheckHandler)

	// Dashboard API; disabled entirely when no verifier is configured.
	if s.tokenVerifier != nil {
		admin := s.app.Group("/admin", s.requireAdmin)
		admin.Get("/conversations", s.adminConversationsHandler)
		admin.Get("/conversations/:senderId", s.adminConversationHandler)
	}
}
