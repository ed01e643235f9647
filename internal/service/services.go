package service

import (
	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/store"
	"github.com/MKhiriev/go-rest-facade/internal/validators"
)

type Services struct {
	AuthService     AuthService
	FeedbackService FeedbackService
	EchoService     EchoService
	PingJob         PingJob
}

func NewServices(requester adapter.Requester, tokens store.TokenStore, log *logger.Logger) *Services {
	validator := validators.NewFormValidator()
	echoSvc := NewEchoService(requester)

	return &Services{
		AuthService:     NewAuthService(requester, tokens, validator, log),
		FeedbackService: NewFeedbackService(requester, validator),
		EchoService:     echoSvc,
		PingJob:         NewPingJob(echoSvc, log),
	}
}
