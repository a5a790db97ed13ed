package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// ChatHandler exposes the natural-language façade.
type ChatHandler struct {
	chat ports.ChatService
}

func NewChatHandler(chat ports.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat classifies a message and performs at most one directory operation.
// Classifier failures still answer 200 with the failure described in response.
//
// @Summary      Chat with the directory assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Free-text message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return domain.Errorf(domain.ErrValidation, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.chat.Handle(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, chatResponse{
		Success:  true,
		Intent:   reply.Intent,
		Response: reply.Response,
		Action:   reply.Action,
	})
}
