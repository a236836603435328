package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vedran77/whispr/internal/service"
	"github.com/vedran77/whispr/internal/transport/http/middleware"
	"github.com/vedran77/whispr/pkg/validator"
	"go.uber.org/zap"
)

type MessageHandler struct {
	messageService *service.MessageService
	logger         *zap.Logger
}

func NewMessageHandler(messageService *service.MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, logger: logger}
}

// Send is deliberately unauthenticated: anyone may drop a message into a
// registered user's inbox, and no sender identity exists to attach.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	recipientID, err := uuid.Parse(chi.URLParam(r, "recipientId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid recipient ID")
		return
	}

	var input service.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateMessage(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	_, err = h.messageService.Send(r.Context(), recipientID, input)
	if err != nil {
		if errors.Is(err, service.ErrRecipientNotFound) {
			writeError(w, http.StatusBadRequest, "RECIPIENT_NOT_FOUND", "Recipient not found")
		} else {
			h.logger.Error("send message failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Message sent successfully",
	})
}

func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	messages, err := h.messageService.Inbox(r.Context(), userID)
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
