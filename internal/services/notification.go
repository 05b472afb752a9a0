package services

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"formintake/internal/domain"
	"formintake/internal/metrics"
)

var inquiryTemplate = template.Must(template.New("inquiry").Funcs(sprig.HtmlFuncMap()).Parse(`<p>{{ .Intro }}</p>
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
{{- range .Rows }}
  <tr><th align="left">{{ .Key }}</th><td>{{ .Value | default "-" }}</td></tr>
{{- end }}
</table>
<p style="color: #64748B; font-size: 14px;">Submitted: {{ dateInZone "January 2, 2006 at 3:04 PM MST" .SubmittedAt "UTC" }}</p>
`))

type inquiryRow struct {
	Key   string
	Value string
}

type inquiryEmail struct {
	Intro       string
	Rows        []inquiryRow
	SubmittedAt time.Time
}

// RenderInquiryEmail renders the notification body for a submission as an
// HTML table of the fields the client sent.
func RenderInquiryEmail(form *domain.Form, entries []domain.Entry, submittedAt time.Time) (string, error) {
	data := inquiryEmail{Intro: form.Intro, SubmittedAt: submittedAt}
	for _, e := range entries {
		value := ""
		if e.Value != nil {
			value = cast.ToString(e.Value)
		}
		data.Rows = append(data.Rows, inquiryRow{Key: e.Key, Value: value})
	}

	var buf bytes.Buffer
	if err := inquiryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s notification: %w", form.Kind, err)
	}
	return buf.String(), nil
}

// NotificationService dispatches inquiry emails in the background. The
// outcome of a dispatch is only logged; callers never see it.
type NotificationService struct {
	email *EmailService
	log   *zap.SugaredLogger
	wg    sync.WaitGroup
}

// NewNotificationService creates a notification service over email.
func NewNotificationService(email *EmailService, log *zap.SugaredLogger) *NotificationService {
	return &NotificationService{email: email, log: log}
}

// Notify starts a detached send for the submission and returns at once.
// Each submission gets exactly one attempt.
func (n *NotificationService) Notify(form *domain.Form, sub domain.Submission) {
	submittedAt := time.Now()
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.send(form, sub, submittedAt)
	}()
}

func (n *NotificationService) send(form *domain.Form, sub domain.Submission, submittedAt time.Time) {
	log := n.log.With("form", form.Kind)

	body, err := RenderInquiryEmail(form, sub.Entries(), submittedAt)
	if err != nil {
		log.Errorw("Error rendering notification email", "error", err)
		metrics.RecordNotification(form.Kind, "failed")
		return
	}

	if !n.email.IsEnabled() {
		log.Infow("Notification email skipped, email disabled", "subject", form.Subject)
		metrics.RecordNotification(form.Kind, "skipped")
		return
	}

	if err := n.email.SendHTMLEmail(form.Subject, body); err != nil {
		log.Warnw("Error sending notification email", "error", err)
		metrics.RecordNotification(form.Kind, "failed")
		return
	}

	log.Infow("Notification email sent", "subject", form.Subject)
	metrics.RecordNotification(form.Kind, "sent")
}

// Wait blocks until every dispatched notification has finished.
func (n *NotificationService) Wait() {
	n.wg.Wait()
}
