package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-facade/internal/app"
	"github.com/MKhiriev/go-rest-facade/models"
)

var rateLimitPhrases = []string{
	"too much",
	"请求过多",
	"request too much",
	"too many requests",
}

func mapHTTPError(status int, payload models.Payload) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := payload.Message()
	if msg == "" {
		msg = fmt.Sprintf(app.MsgHTTPStatusFormat, status)
	}

	return &HTTPError{Status: status, Message: msg, Payload: payload}
}

func mapBusinessError(payload models.Payload) error {
	if payload.Kind != models.KindEnvelope || !payload.Envelope.Failed() {
		return nil
	}

	code := payload.Envelope.CodeString()
	msg := payload.Envelope.Msg
	if msg == "" {
		msg = businessFallbackMessage(code)
	}
	if isRateLimited(msg) {
		msg = RateLimitMessage
	}

	return &BusinessError{Code: code, Message: msg, Payload: payload}
}

func isRateLimited(msg string) bool {
	lower := strings.ToLower(msg)
	for _, phrase := range rateLimitPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
