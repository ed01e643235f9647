package adapter

import (
	"strings"

	"github.com/MKhiriev/go-rest-facade/models"
)

// decodeBody turns a response body into a payload according to its content
// type. A JSON body that does not parse yields an empty payload and the
// decode error, which callers only log.
func decodeBody(contentType string, body []byte) (models.Payload, error) {
	if !strings.Contains(strings.ToLower(contentType), "application/json") {
		return models.TextPayload(string(body)), nil
	}
	return models.ParseJSONPayload(body)
}
