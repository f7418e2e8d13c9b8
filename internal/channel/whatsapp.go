package channel

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type whatsAppInbound struct {
	From      string `json:"from"`
	Text      string `json:"text"`
	MessageID string `json:"messageId"`
}

// WhatsAppHandler receives inbound WhatsApp webhooks and replies through
// the business API, attaching media when the action produced audio.
type WhatsAppHandler struct {
	pipeline  *Pipeline
	messenger Messenger
}

func NewWhatsAppHandler(pipeline *Pipeline, messenger Messenger) *WhatsAppHandler {
	return &WhatsAppHandler{pipeline: pipeline, messenger: messenger}
}

func (h *WhatsAppHandler) Handle(c echo.Context) error {
	var in whatsAppInbound
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid payload",
		})
	}
	if in.From == "" || in.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "from and text are required",
		})
	}

	ctx := c.Request().Context()
	h.messenger.LogInbound(ctx, domain.ChannelWhatsApp, in.From, in.Text, in.MessageID)

	res := h.pipeline.Handle(ctx, domain.ChannelWhatsApp, in.From, in.Text)

	text := TruncateScreen(res.Text, config.WhatsAppMessageLen)
	if err := h.messenger.SendWhatsApp(ctx, in.From, text, res.AudioURL); err != nil {
		slog.Error("whatsapp reply failed", "to", in.From, "error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
