package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"creditwise-backend/internal/usecase/chat"
	"creditwise-backend/pkg/id"
)

type ChatHandler struct{ uc *chat.Usecase }

func NewChatHandler(uc *chat.Usecase) *ChatHandler { return &ChatHandler{uc: uc} }

type chatMessageReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" validate:"required"`
}

func (h *ChatHandler) Message(c echo.Context) error {
	var req chatMessageReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_BODY", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "validation failed", Code: "VALIDATION_ERROR", Details: ToFieldErrors(err),
		})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = id.NewID32()
	}
	dto, err := h.uc.Process(c.Request().Context(), sessionID, req.Message)
	if err != nil {
		return errJSON(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "conversation store unavailable")
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ChatHandler) History(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return errJSON(c, http.StatusBadRequest, "MISSING_SESSION", "session_id query parameter is required")
	}
	msgs, err := h.uc.History(c.Request().Context(), sessionID)
	if err != nil {
		return errJSON(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "conversation store unavailable")
	}
	return c.JSON(http.StatusOK, map[string]any{"session_id": sessionID, "messages": msgs})
}
