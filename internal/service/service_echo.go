package service

import (
	"context"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/models"
)

const defaultEchoMessage = "ping"

type echoService struct {
	requester adapter.Requester
}

func NewEchoService(requester adapter.Requester) EchoService {
	return &echoService{requester: requester}
}

func (e *echoService) Echo(ctx context.Context, message string) (models.Payload, error) {
	if message == "" {
		message = defaultEchoMessage
	}
	return e.requester.Request(ctx, "/hello/echo/"+utils.EscapeComponent(message), adapter.RequestOptions{})
}
