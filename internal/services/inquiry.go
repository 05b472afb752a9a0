package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"formintake/internal/domain"
	"formintake/internal/metrics"
	apperrors "formintake/pkg/errors"
)

// InquiryService persists form submissions and triggers their notification.
type InquiryService struct {
	db       *gorm.DB
	notifier *NotificationService
	log      *zap.SugaredLogger
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(db *gorm.DB, notifier *NotificationService, log *zap.SugaredLogger) *InquiryService {
	return &InquiryService{
		db:       db,
		notifier: notifier,
		log:      log,
	}
}

// Submit stores the recognized fields of body as a new row of the form's
// table and returns the row as written, including the generated id and
// created_at. The insert is not cancelled when ctx is, so a client that
// disconnects mid-request still gets its row written. Insert failures are
// returned as database AppErrors and nothing is sent; otherwise the
// notification is dispatched in the background.
func (s *InquiryService) Submit(ctx context.Context, form *domain.Form, body map[string]any) (domain.Inquiry, error) {
	log := s.log.With("form", form.Kind)
	sub := form.Extract(body)
	log.Debugw("Received form data", "fields", len(sub.Entries()))

	inquiry := form.New()
	inquiry.Bind(sub)

	start := time.Now()
	err := s.db.WithContext(context.WithoutCancel(ctx)).Create(inquiry).Error
	metrics.RecordDBQuery("insert_"+inquiry.TableName(), time.Since(start), err)
	metrics.RecordSubmission(form.Kind, err)
	if err != nil {
		log.Errorw("Error inserting form data", "table", inquiry.TableName(), "error", err)
		return nil, apperrors.Database(err)
	}

	log.Infow("Form data inserted successfully", "table", inquiry.TableName())

	s.notifier.Notify(form, sub)

	return inquiry, nil
}
