package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/optional"
	"github.com/MKhiriev/go-rest-facade/internal/store"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/internal/validators"
	"github.com/MKhiriev/go-rest-facade/models"
)

type authService struct {
	requester adapter.Requester
	tokens    store.TokenStore
	validator validators.Validator
	logger    *logger.Logger
}

func NewAuthService(requester adapter.Requester, tokens store.TokenStore, validator validators.Validator, log *logger.Logger) AuthService {
	return &authService{requester: requester, tokens: tokens, validator: validator, logger: log}
}

func (a *authService) Login(ctx context.Context, form models.LoginForm) (models.Payload, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.Payload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return a.requester.Request(ctx, "/user/login", adapter.RequestOptions{Method: http.MethodPost, Data: form})
}

func (a *authService) Logout(ctx context.Context) (models.Payload, error) {
	payload, err := a.requester.Request(ctx, "/user/logout", adapter.RequestOptions{Method: http.MethodPost})
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authService.Logout").Msg("server logout failed, clearing local token anyway")
	}

	a.tokens.Clear()
	return payload, err
}

func (a *authService) Register(ctx context.Context, form models.RegisterForm) (models.Payload, error) {
	if err := a.validator.Validate(ctx, form); err != nil {
		return models.Payload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return a.requester.Request(ctx, "/user/register", adapter.RequestOptions{Method: http.MethodPost, Data: form})
}

func (a *authService) Me(ctx context.Context) (models.Payload, error) {
	return a.requester.Request(ctx, "/user/me", adapter.RequestOptions{})
}

func (a *authService) PointsHistory(ctx context.Context, limit, page int) (models.Payload, error) {
	path := utils.BuildPath("/user/points/history", "", utils.PathQuery{
		Limit: optional.Some(limit),
		Page:  optional.Some(page),
	})
	return a.requester.Request(ctx, path, adapter.RequestOptions{})
}
