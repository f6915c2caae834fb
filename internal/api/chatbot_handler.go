package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/service"
)

// ChatbotHandler handles tutor conversation requests.
type ChatbotHandler struct {
	chatbotService service.ChatbotService
	logger         *slog.Logger
}

// NewChatbotHandler creates a new ChatbotHandler
func NewChatbotHandler(chatbotService service.ChatbotService, logger *slog.Logger) *ChatbotHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ChatbotHandler")
	}

	return &ChatbotHandler{
		chatbotService: chatbotService,
		logger:         logger.With(slog.String("component", "chatbot_handler")),
	}
}

// Chat handles POST /chatbot requests.
//
//	@Summary		Tutor chat
//	@Description	Answers the conversation in the target language and suggests follow-up prompts.
//	@Tags			chatbot
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChatRequest	true	"Conversation and target language"
//	@Success		200		{object}	domain.ChatReply
//	@Failure		400		{object}	shared.ErrorResponse
//	@Router			/chatbot [post]
func (h *ChatbotHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("chat turn",
		slog.String("language", req.Language),
		slog.Int("messages", len(req.Messages)))

	reply, err := h.chatbotService.Reply(r.Context(), service.ChatInput{
		Messages: toDomainMessages(req.Messages),
		Language: req.Language,
	})
	if err != nil {
		respondServiceError(w, r, err, "Chat failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reply)
}
