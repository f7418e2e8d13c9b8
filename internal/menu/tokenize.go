package menu

import (
	"strings"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

// smsKeywords are the canonical top-level SMS commands. They double as
// transition tokens on the root node.
var smsKeywords = map[string]bool{
	"HEALTH":  true,
	"BOOK":    true,
	"EDUC":    true,
	"EMER":    true,
	"HELP":    true,
	"VOICE":   true,
	"TEXT":    true,
	"MALARIA": true,
	"CHILD":   true,
	"MOM":     true,
	"MENTAL":  true,
	"STATUS":  true,
}

// whatsappSynonyms maps looser WhatsApp phrasing onto the canonical
// keywords, matched by substring in order.
var whatsappSynonyms = []struct {
	substr  string
	keyword string
}{
	{"hello", "HEALTH"},
	{"start", "HEALTH"},
	{"emergency", "EMER"},
	{"urgent", "EMER"},
	{"book", "BOOK"},
	{"consultation", "BOOK"},
	{"education", "EDUC"},
	{"learn", "EDUC"},
	{"voice", "VOICE"},
	{"sms", "TEXT"},
	{"text", "TEXT"},
	{"malaria", "MALARIA"},
	{"child", "CHILD"},
	{"maternal", "MOM"},
	{"pregnancy", "MOM"},
	{"mental", "MENTAL"},
	{"help", "HELP"},
	{"status", "STATUS"},
	{"appointment", "STATUS"},
}

// Tokenize turns a channel's raw payload into the ordered token history
// the dispatcher walks. An empty payload yields an empty list, meaning
// "show the root menu".
func Tokenize(channel domain.Channel, raw string) []string {
	switch channel {
	case domain.ChannelUSSD:
		return splitPath(raw, "*")
	case domain.ChannelVoice:
		return splitDigits(raw)
	case domain.ChannelSMS:
		return tokenizeSMS(raw)
	case domain.ChannelWhatsApp:
		return tokenizeWhatsApp(raw)
	}
	return tokenizeSMS(raw)
}

func splitPath(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitDigits treats every DTMF digit as one token. The voice gateway
// resends all digits collected so far on each round trip.
func splitDigits(raw string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			out = append(out, string(r))
		}
	}
	return out
}

func tokenizeSMS(raw string) []string {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return nil
	}

	first, rest, _ := strings.Cut(msg, " ")
	keyword := strings.ToUpper(first)
	if smsKeywords[keyword] {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return []string{keyword}
		}
		// Trailing text becomes a handler argument (e.g. TEXT <symptoms>).
		return []string{keyword, rest}
	}

	return []string{TokenFreeText, msg}
}

func tokenizeWhatsApp(raw string) []string {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return nil
	}

	lower := strings.ToLower(msg)
	if lower == "hi" {
		return []string{"HEALTH"}
	}
	for _, s := range whatsappSynonyms {
		if strings.Contains(lower, s.substr) {
			return []string{s.keyword}
		}
	}

	return []string{TokenFreeText, msg}
}
