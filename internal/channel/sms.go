package channel

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// SMSHandler receives inbound SMS form posts and pushes the reply back
// through the carrier gateway. Every inbound and outbound message ends
// up in the communication log.
type SMSHandler struct {
	pipeline  *Pipeline
	messenger Messenger
}

func NewSMSHandler(pipeline *Pipeline, messenger Messenger) *SMSHandler {
	return &SMSHandler{pipeline: pipeline, messenger: messenger}
}

func (h *SMSHandler) Handle(c echo.Context) error {
	from := c.FormValue("from")
	text := c.FormValue("text")
	externalID := c.FormValue("id")

	if from == "" || text == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "from and text are required",
		})
	}

	ctx := c.Request().Context()
	h.messenger.LogInbound(ctx, domain.ChannelSMS, from, text, externalID)

	res := h.pipeline.Handle(ctx, domain.ChannelSMS, from, text)

	for _, segment := range SplitSMS(res.Text, config.SMSSegmentLen) {
		if err := h.messenger.SendSMS(ctx, from, segment); err != nil {
			slog.Error("sms reply failed", "to", from, "error", err)
			break
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
