package channel

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// VoiceAction is one instruction in the call-control reply: speak a
// prompt, collect DTMF digits, bridge a call, or play a recording.
type VoiceAction struct {
	Action      string `json:"action"`
	Text        string `json:"text,omitempty"`
	URL         string `json:"url,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Record      bool   `json:"record,omitempty"`
	NumDigits   int    `json:"numDigits,omitempty"`
	Timeout     int    `json:"timeout,omitempty"`
}

type voiceReply struct {
	Actions []VoiceAction `json:"actions"`
}

// VoiceHandler drives IVR sessions. The gateway resends the accumulated
// DTMF digits on every round trip; each digit is one menu token.
type VoiceHandler struct {
	pipeline  *Pipeline
	messenger Messenger
}

func NewVoiceHandler(pipeline *Pipeline, messenger Messenger) *VoiceHandler {
	return &VoiceHandler{pipeline: pipeline, messenger: messenger}
}

func (h *VoiceHandler) Handle(c echo.Context) error {
	sessionID := c.FormValue("sessionId")
	caller := c.FormValue("callerNumber")
	digits := c.FormValue("dtmfDigits")
	state := c.FormValue("callSessionState")

	if state == "Completed" {
		return c.JSON(http.StatusOK, voiceReply{})
	}
	if caller == "" {
		return c.JSON(http.StatusOK, voiceReply{Actions: []VoiceAction{{
			Action: "say",
			Text:   "Sorry, there was an error. Please call back later.",
		}}})
	}

	slog.Info("voice request", "session_id", sessionID, "caller", caller, "digits", digits)

	ctx := c.Request().Context()
	h.messenger.LogInbound(ctx, domain.ChannelVoice, caller, "DTMF: "+digits, sessionID)

	res := h.pipeline.Handle(ctx, domain.ChannelVoice, caller, digits)

	return c.JSON(http.StatusOK, voiceReply{Actions: voiceActions(res)})
}

func voiceActions(res Response) []VoiceAction {
	switch {
	case res.DialNumber != "":
		return []VoiceAction{
			{Action: "say", Text: res.Text},
			{Action: "dial", PhoneNumber: res.DialNumber, Record: true},
		}
	case res.AudioURL != "":
		// Digits collected here re-enter the same resolved action, so the
		// prompt only offers the repeat.
		return []VoiceAction{
			{Action: "play", URL: res.AudioURL},
			{
				Action:    "getDigits",
				Text:      "Press 1 to repeat.",
				NumDigits: 1,
				Timeout:   config.DTMFTimeoutSeconds,
			},
		}
	case res.EndSession:
		return []VoiceAction{{Action: "say", Text: res.Text}}
	default:
		return []VoiceAction{{
			Action:    "getDigits",
			Text:      res.Text,
			NumDigits: 1,
			Timeout:   config.DTMFTimeoutSeconds,
		}}
	}
}
