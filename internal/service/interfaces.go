// Package service holds the endpoint collaborators built on top of the
// request pipeline, and [Safe], which turns a failing call into a
// [models.Result].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/models"
)

// AuthService covers the /user endpoints.
type AuthService interface {
	// Login posts the form to /user/login. A credential returned by the
	// backend is persisted by the pipeline.
	Login(ctx context.Context, form models.LoginForm) (models.Payload, error)

	// Logout posts to /user/logout and then clears the local credential,
	// even when the backend call failed.
	Logout(ctx context.Context) (models.Payload, error)

	// Register posts the form to /user/register.
	Register(ctx context.Context, form models.RegisterForm) (models.Payload, error)

	// Me returns the current user.
	Me(ctx context.Context) (models.Payload, error)

	// PointsHistory lists the current user's points history page.
	PointsHistory(ctx context.Context, limit, page int) (models.Payload, error)
}

// FeedbackService covers user feedback and its admin listing.
type FeedbackService interface {
	// Submit posts a feedback text.
	Submit(ctx context.Context, text string) (models.Payload, error)

	// NotRead lists unread feedback (admin). Only the segments set in q
	// are sent.
	NotRead(ctx context.Context, q utils.PathQuery) (models.Payload, error)

	// ByUser lists a user's feedback filtered by read state (admin).
	ByUser(ctx context.Context, userID string, read bool, limit, page int) (models.Payload, error)

	// MarkRead marks one feedback item as read (admin). The body is the
	// bare id.
	MarkRead(ctx context.Context, id int64) (models.Payload, error)
}

// EchoService is the backend's liveness endpoint.
type EchoService interface {
	// Echo calls /hello/echo/<message>; an empty message sends "ping".
	Echo(ctx context.Context, message string) (models.Payload, error)
}

// PingJob periodically calls the echo endpoint in the background.
type PingJob interface {
	// Start stops any running job and begins pinging every interval.
	// report receives the outcome of every ping.
	Start(ctx context.Context, interval time.Duration, report func(models.Result[models.Payload]))

	// Stop cancels the job and waits for it to exit.
	Stop()
}
