package gateway

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestHumanizeError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		ctx     callContext
		wantSub string
	}{
		{"InvalidKey", errors.New("googleapi: Error 400: API key not valid"), ctxFindSpots, "API-Schlüssel ist ungültig"},
		{"Quota", errors.New("googleapi: Error 429: quota exceeded"), ctxPlan, "Nutzungslimit (Quota)"},
		{"PermissionDenied", errors.New("rpc error: code = PermissionDenied"), ctxGeocode, "Zugriff verweigert"},
		{"BillingOnImageCall", errors.New("billing required for this model"), ctxImage, "aktivierter Abrechnung"},
		{"BillingOnTextCallIsGeneric", errors.New("billing required for this model"), ctxFindSpots, "unerwarteter Fehler"},
		{"Network", errors.New("dial tcp: lookup generativelanguage.googleapis.com: no such host"), ctxFindSpots, "Netzwerkfehler"},
		{"MalformedJSON", fmt.Errorf("failed to parse plan json: unexpected end of JSON input"), ctxPlan, "unerwarteten Format"},
		{"InvalidPayload", fmt.Errorf("invalid spot payload: spot is missing an id"), ctxFindSpots, "unerwarteten Format"},
		{"Unknown", errors.New("something odd"), ctxSuggestions, "der Suche nach Terminvorschlägen"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := humanizeError(c.err, c.ctx)
			if !strings.Contains(got.Error(), c.wantSub) {
				t.Errorf("Expected message containing %q, got %q", c.wantSub, got.Error())
			}
			if !errors.Is(got, c.err) {
				t.Error("Expected the original error to stay wrapped")
			}
		})
	}
}

func TestErrorMessageIsUserFacing(t *testing.T) {
	cause := errors.New("googleapi: Error 429: quota exceeded")
	err := humanizeError(cause, ctxFindSpots)

	// The visible message must not leak the raw API error.
	if strings.Contains(err.Error(), "googleapi") {
		t.Errorf("User-facing message leaks internals: %q", err.Error())
	}
}
