// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
	"github.com/MKhiriev/go-rest-facade/internal/mock"
	"github.com/MKhiriev/go-rest-facade/internal/optional"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/internal/validators"
	"github.com/MKhiriev/go-rest-facade/models"
)

func okPayload(t *testing.T) models.Payload {
	t.Helper()
	p, err := models.ParseJSONPayload([]byte(`{"code":0,"data":{},"msg":"ok"}`))
	require.NoError(t, err)
	return p
}

// newTestAuthSvc: хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockRequester, *mock.MockTokenStore) {
	t.Helper()
	requester := mock.NewMockRequester(ctrl)
	tokens := mock.NewMockTokenStore(ctrl)
	return NewAuthService(requester, tokens, validators.NewFormValidator(), logger.Nop()), requester, tokens
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, requester, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	form := models.LoginForm{Username: "alice", Password: "secret"}
	requester.EXPECT().
		Request(ctx, "/user/login", adapter.RequestOptions{Method: http.MethodPost, Data: form}).
		Return(okPayload(t), nil)

	got, err := svc.Login(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, models.KindEnvelope, got.Kind)
}

func TestAuthService_Login_InvalidForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	// запрос к серверу не должен отправляться
	_, err := svc.Login(context.Background(), models.LoginForm{Username: "alice"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptySecret)
}

func TestAuthService_Login_BusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, requester, _ := newTestAuthSvc(t, ctrl)

	bizErr := &adapter.BusinessError{Code: "1", Message: "用户名或密码错误"}
	requester.EXPECT().Request(gomock.Any(), "/user/login", gomock.Any()).Return(models.Payload{}, bizErr)

	_, err := svc.Login(context.Background(), models.LoginForm{Phone: "138", Code: "1234"})
	require.ErrorIs(t, err, adapter.ErrBusiness)
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("clears token after success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, requester, tokens := newTestAuthSvc(t, ctrl)

		gomock.InOrder(
			requester.EXPECT().
				Request(gomock.Any(), "/user/logout", adapter.RequestOptions{Method: http.MethodPost}).
				Return(okPayload(t), nil),
			tokens.EXPECT().Clear(),
		)

		_, err := svc.Logout(context.Background())
		require.NoError(t, err)
	})

	t.Run("clears token even when the server fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, requester, tokens := newTestAuthSvc(t, ctrl)

		netErr := &adapter.NetworkError{Err: errors.New("connection refused")}
		requester.EXPECT().Request(gomock.Any(), "/user/logout", gomock.Any()).Return(models.Payload{}, netErr)
		tokens.EXPECT().Clear()

		_, err := svc.Logout(context.Background())
		require.ErrorIs(t, err, adapter.ErrNetwork)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, requester, _ := newTestAuthSvc(t, ctrl)

	form := models.RegisterForm{Phone: "13800000000", Password: "secret", Code: "1234"}
	requester.EXPECT().
		Request(gomock.Any(), "/user/register", adapter.RequestOptions{Method: http.MethodPost, Data: form}).
		Return(okPayload(t), nil)

	_, err := svc.Register(context.Background(), form)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), models.RegisterForm{Password: "x"})
	assert.ErrorIs(t, err, validators.ErrEmptyPhone)
}

func TestAuthService_MeAndPointsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, requester, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	requester.EXPECT().Request(ctx, "/user/me", adapter.RequestOptions{}).Return(okPayload(t), nil)
	requester.EXPECT().Request(ctx, "/user/points/history/20/1", adapter.RequestOptions{}).Return(okPayload(t), nil)
	requester.EXPECT().Request(ctx, "/user/points/history/5/3", adapter.RequestOptions{}).Return(okPayload(t), nil)

	_, err := svc.Me(ctx)
	require.NoError(t, err)
	_, err = svc.PointsHistory(ctx, 0, -1)
	require.NoError(t, err)
	_, err = svc.PointsHistory(ctx, 5, 3)
	require.NoError(t, err)
}

// ── Feedback ─────────────────────────────────────────────────────────────────

func TestFeedbackService(t *testing.T) {
	ctrl := gomock.NewController(t)
	requester := mock.NewMockRequester(ctrl)
	svc := NewFeedbackService(requester, validators.NewFormValidator())
	ctx := context.Background()

	t.Run("submit", func(t *testing.T) {
		requester.EXPECT().
			Request(ctx, "/feedback/feedback", adapter.RequestOptions{Method: http.MethodPost, Data: models.Feedback{Text: "nice"}}).
			Return(okPayload(t), nil)

		_, err := svc.Submit(ctx, "nice")
		require.NoError(t, err)
	})

	t.Run("submit empty text", func(t *testing.T) {
		_, err := svc.Submit(ctx, "   ")
		require.ErrorIs(t, err, validators.ErrEmptyText)
	})

	t.Run("not read without options", func(t *testing.T) {
		requester.EXPECT().Request(ctx, "/admin/feedback/not-read", adapter.RequestOptions{}).Return(okPayload(t), nil)

		_, err := svc.NotRead(ctx, utils.PathQuery{})
		require.NoError(t, err)
	})

	t.Run("not read with range", func(t *testing.T) {
		from := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)
		to := time.Date(2024, 2, 3, 4, 5, 6, 0, time.Local)
		requester.EXPECT().
			Request(ctx, "/admin/feedback/not-read/2024-01-02_03:04:05/2024-02-03_04:05:06/10/2", adapter.RequestOptions{}).
			Return(okPayload(t), nil)

		_, err := svc.NotRead(ctx, utils.PathQuery{
			TimeFrom: optional.Some(from),
			TimeTo:   optional.Some(to),
			Limit:    optional.Some(10),
			Page:     optional.Some(2),
		})
		require.NoError(t, err)
	})

	t.Run("by user", func(t *testing.T) {
		requester.EXPECT().Request(ctx, "/admin/feedback/user/77/false/20/1", adapter.RequestOptions{}).Return(okPayload(t), nil)

		_, err := svc.ByUser(ctx, "77", false, 20, 1)
		require.NoError(t, err)
	})

	t.Run("mark read sends the bare id", func(t *testing.T) {
		requester.EXPECT().
			Request(ctx, "/admin/feedback/read", adapter.RequestOptions{Method: http.MethodPut, Data: int64(9)}).
			Return(okPayload(t), nil)

		_, err := svc.MarkRead(ctx, 9)
		require.NoError(t, err)
	})
}

// ── Echo ─────────────────────────────────────────────────────────────────────

func TestEchoService(t *testing.T) {
	ctrl := gomock.NewController(t)
	requester := mock.NewMockRequester(ctrl)
	svc := NewEchoService(requester)
	ctx := context.Background()

	requester.EXPECT().Request(ctx, "/hello/echo/ping", adapter.RequestOptions{}).Return(models.TextPayload("ping"), nil)
	requester.EXPECT().Request(ctx, "/hello/echo/hi%20there%2F%3F", adapter.RequestOptions{}).Return(models.TextPayload("hi there/?"), nil)

	got, err := svc.Echo(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "ping", got.Text)

	got, err = svc.Echo(ctx, "hi there/?")
	require.NoError(t, err)
	assert.Equal(t, "hi there/?", got.Text)
}

// ── PingJob ──────────────────────────────────────────────────────────────────

// spyEchoService считает вызовы Echo.
type spyEchoService struct {
	calls atomic.Int64
	err   error
}

func (s *spyEchoService) Echo(_ context.Context, message string) (models.Payload, error) {
	s.calls.Add(1)
	return models.TextPayload(message), s.err
}

func TestPingJob_Reports(t *testing.T) {
	spy := &spyEchoService{}
	job := NewPingJob(spy, logger.Nop())

	var ok atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func(r models.Result[models.Payload]) {
		if r.OK {
			ok.Add(1)
		}
	})
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	// первый пинг сразу, затем по тикеру
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Equal(t, spy.calls.Load(), ok.Load())
}

func TestPingJob_ReportsFailures(t *testing.T) {
	spy := &spyEchoService{err: &adapter.NetworkError{Err: errors.New("refused")}}
	job := NewPingJob(spy, logger.Nop())

	results := make(chan models.Result[models.Payload], 1)
	job.Start(context.Background(), time.Hour, func(r models.Result[models.Payload]) {
		select {
		case results <- r:
		default:
		}
	})
	defer job.Stop()

	select {
	case r := <-results:
		assert.False(t, r.OK)
		assert.Equal(t, adapter.NetworkErrorMessage, r.Msg)
	case <-time.After(time.Second):
		t.Fatal("no ping reported")
	}
}

func TestPingJob_StopHaltsPinging(t *testing.T) {
	spy := &spyEchoService{}
	job := NewPingJob(spy, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond, nil)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())

	// повторный Stop безопасен
	job.Stop()
}

func TestPingJob_ContextCancel(t *testing.T) {
	spy := &spyEchoService{}
	job := NewPingJob(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond, nil)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs := NewServices(mock.NewMockRequester(ctrl), mock.NewMockTokenStore(ctrl), logger.Nop())

	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.AuthService)
	assert.NotNil(t, svcs.FeedbackService)
	assert.NotNil(t, svcs.EchoService)
	assert.NotNil(t, svcs.PingJob)
}
