package channel

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// USSDHandler speaks the aggregator's form-post protocol: the gateway
// resends the full "*"-joined input path on every round trip, and the
// reply's CON/END prefix tells it whether to keep the session open.
type USSDHandler struct {
	pipeline  *Pipeline
	messenger Messenger
}

func NewUSSDHandler(pipeline *Pipeline, messenger Messenger) *USSDHandler {
	return &USSDHandler{pipeline: pipeline, messenger: messenger}
}

func (h *USSDHandler) Handle(c echo.Context) error {
	sessionID := c.FormValue("sessionId")
	phone := c.FormValue("phoneNumber")
	text := c.FormValue("text")

	if phone == "" {
		return c.String(http.StatusOK, "END Sorry, there was an error. Please try again later.")
	}

	slog.Info("ussd request", "session_id", sessionID, "phone", phone, "text", text)

	ctx := c.Request().Context()
	h.messenger.LogInbound(ctx, domain.ChannelUSSD, phone, text, sessionID)

	res := h.pipeline.Handle(ctx, domain.ChannelUSSD, phone, text)

	prefix := "CON "
	if res.EndSession {
		prefix = "END "
	}
	return c.String(http.StatusOK, prefix+TruncateScreen(res.Text, config.USSDScreenLen))
}
