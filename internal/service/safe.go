package service

import (
	"context"

	"github.com/MKhiriev/go-rest-facade/internal/app"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/models"
)

// Safe runs fn and converts its outcome into a [models.Result]. A failure
// is logged and its message copied into Msg, or [app.MsgRequestFailed] if
// the error has none. Safe never returns an error and never panics on one.
func Safe[T any](ctx context.Context, log *logger.Logger, fn func(context.Context) (T, error)) models.Result[T] {
	res, err := fn(ctx)
	if err == nil {
		return models.Result[T]{OK: true, Res: res}
	}

	log.Err(err).Str("func", "service.Safe").Msg("request failed")

	msg := err.Error()
	if msg == "" {
		msg = app.MsgRequestFailed
	}
	return models.Result[T]{OK: false, Msg: msg}
}
