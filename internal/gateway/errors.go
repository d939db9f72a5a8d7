package gateway

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// callContext names the operation in user-facing error messages.
type callContext struct {
	label   string
	isImage bool
}

var (
	ctxFindSpots      = callContext{label: "der Suche nach Foto-Spots"}
	ctxPlan           = callContext{label: "der Erstellung des Shooting-Plans"}
	ctxSuggestions    = callContext{label: "der Suche nach Terminvorschlägen"}
	ctxGeocode        = callContext{label: "der Adress-Suche (Geocoding)"}
	ctxReverseGeocode = callContext{label: "der Standortermittlung (Reverse Geocoding)"}
	ctxImage          = callContext{label: "der Bildgenerierung", isImage: true}
	ctxMoodImage      = callContext{label: "der Bildgenerierung für das Moodboard", isImage: true}
	ctxAnalyze        = callContext{label: "der Bildanalyse"}
	ctxFollowUp       = callContext{label: "der Beantwortung deiner Frage"}
	ctxIdeas          = callContext{label: "der Generierung neuer Ideen"}
)

// Error carries the user-readable message while keeping the underlying
// cause reachable via errors.Unwrap.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// humanizeError converts an API failure into a user-readable German message.
// The original error stays wrapped for logs and tests.
func humanizeError(err error, ctx callContext) error {
	log.Debug().Err(err).Str("context", ctx.label).Msg("gateway call failed")

	details := strings.ToLower(err.Error())
	message := fmt.Sprintf("Ein unerwarteter Fehler ist bei %s aufgetreten. Bitte versuche es erneut.", ctx.label)

	switch {
	case strings.Contains(details, "api key not valid"), strings.Contains(details, "api_key_invalid"):
		message = "Dein API-Schlüssel ist ungültig. Bitte überprüfe deinen API-Schlüssel."
	case ctx.isImage && (strings.Contains(details, "billing required") || strings.Contains(details, "enable billing")):
		message = "Die Bildgenerierung erfordert ein Google Cloud Projekt mit aktivierter Abrechnung. Stelle sicher, dass die Vertex AI API aktiviert und mit einem Rechnungskonto verknüpft ist."
	case strings.Contains(details, "permission denied"), strings.Contains(details, "permission_denied"):
		message = "Zugriff verweigert. Stelle sicher, dass dein API-Schlüssel die benötigten Google-APIs in deinem Projekt nutzen darf."
	case strings.Contains(details, "quota"), strings.Contains(details, "resource exhausted"):
		message = "Du hast dein Nutzungslimit (Quota) für die API erreicht. Bitte versuche es später erneut."
	case strings.Contains(details, "no such host"),
		strings.Contains(details, "connection refused"),
		strings.Contains(details, "network is unreachable"),
		strings.Contains(details, "deadline exceeded"),
		strings.Contains(details, "context canceled"):
		message = "Netzwerkfehler. Bitte überprüfe deine Internetverbindung und versuche es erneut."
	case strings.Contains(details, "json"), strings.Contains(details, "payload"):
		message = "Die Antwort der KI war in einem unerwarteten Format. Versuche die Anfrage leicht zu ändern."
	}

	return &Error{Message: message, Err: err}
}
