package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
	goahttp "goa.design/goa/v3/http"

	"formintake/internal/domain"
	"formintake/internal/services"
	apperrors "formintake/pkg/errors"
)

// InquirySubmitter persists a form submission.
type InquirySubmitter interface {
	Submit(ctx context.Context, form *domain.Form, body map[string]any) (domain.Inquiry, error)
}

// HealthChecker reports service health.
type HealthChecker interface {
	Check(ctx context.Context) (*services.HealthResult, error)
}

// SubmitResponse is the body of every submission response.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func submitHandler(svc InquirySubmitter, form *domain.Form, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Anything that is not a JSON object counts as an empty submission.
		var body map[string]any
		if err := goahttp.RequestDecoder(r).Decode(&body); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warnw("Ignoring undecodable form body", "form", form.Kind, "error", err)
			}
			body = nil
		}

		inquiry, err := svc.Submit(ctx, form, body)
		if err != nil {
			status, res := failure(err)
			encode(ctx, w, status, res, log)
			return
		}

		encode(ctx, w, http.StatusOK, &SubmitResponse{
			Success: true,
			Message: form.Message,
			Data:    inquiry,
		}, log)
	}
}

func failure(err error) (int, *SubmitResponse) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Wrap(apperrors.ErrCodeInternalError, "Internal error", err)
	}
	return http.StatusInternalServerError, &SubmitResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr.Cause(),
	}
}

func healthHandler(svc HealthChecker, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		res, err := svc.Check(ctx)
		if err != nil {
			log.Warnw("Health check failed", "error", err)
			encode(ctx, w, http.StatusServiceUnavailable, res, log)
			return
		}
		encode(ctx, w, http.StatusOK, res, log)
	}
}

func encode(ctx context.Context, w http.ResponseWriter, status int, v any, log *zap.SugaredLogger) {
	enc := goahttp.ResponseEncoder(ctx, w)
	w.WriteHeader(status)
	if err := enc.Encode(v); err != nil {
		log.Errorw("Error encoding response", "error", err)
	}
}
