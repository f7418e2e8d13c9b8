// Package channel adapts carrier webhooks (USSD, SMS, voice, WhatsApp)
// onto the shared menu pipeline. Each adapter owns its wire format; the
// menu walk and action dispatch are identical across channels.
package channel

import (
	"context"
	"log/slog"

	"github.com/healthconnect-sl/healthconnect/internal/actions"
	"github.com/healthconnect-sl/healthconnect/internal/config"
	"github.com/healthconnect-sl/healthconnect/internal/domain"
	"github.com/healthconnect-sl/healthconnect/internal/menu"
)

// Messenger is the communication log surface shared by all adapters.
// Every adapter records its inbound message through LogInbound; the push
// adapters (SMS, WhatsApp) additionally send replies through it so the
// outbound side is recorded too.
type Messenger interface {
	LogInbound(ctx context.Context, channel domain.Channel, phone, content, externalID string)
	SendSMS(ctx context.Context, to, message string) error
	SendWhatsApp(ctx context.Context, to, message, mediaURL string) error
}

// Response is the channel-agnostic outcome of one inbound message.
type Response struct {
	Text       string
	AudioURL   string
	DialNumber string
	EndSession bool
}

// Pipeline resolves raw input against the menu tree and runs the
// resulting action. It is stateless: the caller's full token history
// arrives with every request.
type Pipeline struct {
	tree     *menu.Tree
	registry *actions.Registry
}

func NewPipeline(tree *menu.Tree, registry *actions.Registry) *Pipeline {
	return &Pipeline{tree: tree, registry: registry}
}

func (p *Pipeline) Handle(ctx context.Context, ch domain.Channel, callerID, raw string) Response {
	tokens := menu.Tokenize(ch, raw)
	res := p.tree.Resolve(tokens)

	if res.Kind == menu.KindMenu {
		text := res.Node.Prompt
		if res.Invalid {
			text = "Invalid option. " + text
		}
		return Response{Text: text}
	}

	args := append(append([]string(nil), res.Action.Args...), res.Args...)
	out, err := p.registry.Handle(ctx, res.Action.ID, actions.Request{
		CallerID: callerID,
		Channel:  ch,
		Args:     args,
	})
	if err != nil {
		slog.Error("action failed", "action", res.Action.ID, "channel", ch, "error", err)
		return Response{
			Text: "Sorry, there was an error. Please try again or call " +
				config.EmergencyNumber + ".",
			EndSession: true,
		}
	}

	return Response{
		Text:       out.Text,
		AudioURL:   out.AudioURL,
		DialNumber: out.DialNumber,
		EndSession: out.EndSession,
	}
}
