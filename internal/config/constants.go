package config

import "time"

const (
	// Emergency contacts. The national line is quoted in every emergency
	// reply regardless of what the automated flow manages to do.
	EmergencyNumber     = "117"
	EmergencyDialNumber = "+232117"
	OperatorNumber      = "+2321234567"
	MaternalHotline     = "1234"
	MaternalDialNumber  = "+2321234"
	AudioLineNumber     = "1234"

	// One attempt against the content generator, then fallback. Carrier
	// gateways time out in a few seconds, so this stays short.
	ContentTimeout = 5 * time.Second

	// Outbound carrier call budget
	CarrierTimeout = 10 * time.Second

	// Channel length budgets
	SMSSegmentLen      = 160
	USSDScreenLen      = 182
	WhatsAppMessageLen = 4096

	// Voice menu digit collection
	DTMFTimeoutSeconds = 30
)
