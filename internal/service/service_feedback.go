package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-rest-facade/internal/adapter"
	"github.com/MKhiriev/go-rest-facade/internal/optional"
	"github.com/MKhiriev/go-rest-facade/internal/utils"
	"github.com/MKhiriev/go-rest-facade/internal/validators"
	"github.com/MKhiriev/go-rest-facade/models"
)

type feedbackService struct {
	requester adapter.Requester
	validator validators.Validator
}

func NewFeedbackService(requester adapter.Requester, validator validators.Validator) FeedbackService {
	return &feedbackService{requester: requester, validator: validator}
}

func (f *feedbackService) Submit(ctx context.Context, text string) (models.Payload, error) {
	feedback := models.Feedback{Text: text}
	if err := f.validator.Validate(ctx, feedback); err != nil {
		return models.Payload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return f.requester.Request(ctx, "/feedback/feedback", adapter.RequestOptions{Method: http.MethodPost, Data: feedback})
}

func (f *feedbackService) NotRead(ctx context.Context, q utils.PathQuery) (models.Payload, error) {
	return f.requester.Request(ctx, utils.BuildPath("/admin/feedback/not-read", "", q), adapter.RequestOptions{})
}

func (f *feedbackService) ByUser(ctx context.Context, userID string, read bool, limit, page int) (models.Payload, error) {
	path := utils.BuildPath("/admin/feedback/user", userID, utils.PathQuery{
		Read:  optional.Some(read),
		Limit: optional.Some(limit),
		Page:  optional.Some(page),
	})
	return f.requester.Request(ctx, path, adapter.RequestOptions{})
}

func (f *feedbackService) MarkRead(ctx context.Context, id int64) (models.Payload, error) {
	return f.requester.Request(ctx, "/admin/feedback/read", adapter.RequestOptions{Method: http.MethodPut, Data: id})
}
