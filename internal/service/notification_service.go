package service

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/pkg/config"
)

// Fallback phrases used when a transition carries no description. The
// health-camp wording differs from the other kinds and is kept that way.
const (
	defaultStatusNote           = "No additional notes."
	defaultHealthCampStatusNote = "No additional notes provided."
)

type MailSender interface {
	DialAndSend(...*gomail.Message) error
}

// NewSMTPSender builds the gomail dialer for the configured transport.
// Returns nil when mail is disabled; the notification service then no-ops.
func NewSMTPSender(cfg config.MailConfig) MailSender {
	if !cfg.Enabled {
		return nil
	}
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
}

// NotificationService composes and transmits templated citizen emails.
// Every send runs inside its own error boundary: failures are logged and
// never propagated, so notification can never affect the outcome of the
// business transaction that triggered it.
type NotificationService struct {
	sender  MailSender
	from    string
	logger  *zap.Logger
	metrics *MetricsService
}

// NewNotificationService constructs the dispatcher.
func NewNotificationService(sender MailSender, from string, logger *zap.Logger, metrics *MetricsService) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{sender: sender, from: from, logger: logger, metrics: metrics}
}

var registrationWelcomeTmpl = template.Must(template.New("registration-welcome").Parse(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #33691E;">Dear {{.FullName}},</h2>
  <p>Thank you for registering with the Naidupeta Municipal Corporation citizen portal!</p>
  <p>Your registration allows you to:</p>
  <ul>
    <li>Easily submit complaints and track their status.</li>
    <li>Apply for event permissions.</li>
    <li>Request approvals for conducting health camps.</li>
    <li>Stay updated with news and announcements from the Municipal Corporation.</li>
  </ul>
  <p>Here are your registration details:</p>
  <ul>
    <li><strong>Name:</strong> {{.FullName}}</li>
    <li><strong>Mobile:</strong> {{.Mobile}}</li>
    <li><strong>Ward:</strong> {{.Ward}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
  </ul>
  <p>Please keep your login credentials secure.</p>
  <p>Best Regards,<br>Naidupeta Municipal Corporation</p>
  <hr style="border: 0; border-top: 1px solid #eee;">
  <p style="font-size: 0.8em; color: #777;">This is an automated email, please do not reply.</p>
</div>`))

var submissionAckTmpl = template.Must(template.New("submission-ack").Parse(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #33691E;">Dear Citizen,</h2>
  <p>Your {{.Kind}} has been successfully submitted to Naidupeta Municipal Corporation.</p>
  {{if .Title}}<p><strong>Health Camp Title:</strong> {{.Title}}</p>{{end}}
  <p>{{.IDLabel}}: <strong>{{.RecordID}}</strong></p>
  <p>You can track your request's status anytime on our portal.</p>
  <hr style="border-top: 1px solid #eee;"/>
  <p style="font-size: 0.8em; color: #777;">This is an automated email, please do not reply.</p>
</div>`))

var statusUpdateTmpl = texttemplate.Must(texttemplate.New("status-update").Parse(`Dear Citizen,

    Your {{.Kind}} with ID : {{.RecordID}} has been updated.

    New Status : {{.Status}}

    Description : {{.Description}}

Thank you for using our services.

Regards
Naidupeta Municipality`))

// SendRegistrationWelcome emails a welcome message to a freshly registered
// citizen. Best-effort.
func (s *NotificationService) SendRegistrationWelcome(citizen *models.Citizen) {
	if s == nil || citizen == nil {
		return
	}
	body, err := renderHTML(registrationWelcomeTmpl, map[string]string{
		"FullName": citizen.FullName(),
		"Mobile":   citizen.Mobile,
		"Ward":     citizen.Ward,
		"Email":    citizen.Email,
	})
	if err != nil {
		s.logger.Error("render registration email", zap.Error(err))
		return
	}
	s.send(citizen.Email, "Welcome to NMC! Citizen Registration Successful!", "text/html", body)
}

// SendComplaintSubmitted acknowledges a new complaint. Best-effort.
func (s *NotificationService) SendComplaintSubmitted(email, complaintID string) {
	s.sendSubmissionAck(email, "complaint", "Complaint ID", complaintID, "",
		fmt.Sprintf("Complaint Submitted Successfully - ID: %s", complaintID))
}

// SendEventPermissionSubmitted acknowledges a new event-permission request.
func (s *NotificationService) SendEventPermissionSubmitted(email, permissionID string) {
	s.sendSubmissionAck(email, "event permission request", "Event Permission ID", permissionID, "",
		fmt.Sprintf("Event Permission Request Submitted - ID: %s", permissionID))
}

// SendHealthCampSubmitted acknowledges a new health-camp request, including
// the camp title.
func (s *NotificationService) SendHealthCampSubmitted(email, healthCampID, campTitle string) {
	s.sendSubmissionAck(email, "health camp request", "Health Camp Request ID", healthCampID, campTitle,
		fmt.Sprintf("Health Camp Request Submitted - ID: %s", healthCampID))
}

// SendComplaintStatus notifies the citizen of a complaint transition.
func (s *NotificationService) SendComplaintStatus(email, complaintID, status, description string) {
	s.sendStatusUpdate(email, "complaint", complaintID, status, description, defaultStatusNote,
		fmt.Sprintf("Complaint Status Update - ID: %s", complaintID))
}

// SendEventPermissionStatus notifies the citizen of an event-permission
// transition.
func (s *NotificationService) SendEventPermissionStatus(email, permissionID, status, description string) {
	s.sendStatusUpdate(email, "Event Permission", permissionID, status, description, defaultStatusNote,
		fmt.Sprintf("Event Permission Status Update - ID: %s", permissionID))
}

// SendHealthCampStatus notifies the citizen of a health-camp transition.
func (s *NotificationService) SendHealthCampStatus(email, healthCampID, status, description string) {
	s.sendStatusUpdate(email, "Health Camp Permission", healthCampID, status, description, defaultHealthCampStatusNote,
		fmt.Sprintf("Health Camp Permission Update - ID: %s", healthCampID))
}

func (s *NotificationService) sendSubmissionAck(email, kind, idLabel, recordID, title, subject string) {
	if s == nil {
		return
	}
	body, err := renderHTML(submissionAckTmpl, map[string]string{
		"Kind":     kind,
		"IDLabel":  idLabel,
		"RecordID": recordID,
		"Title":    title,
	})
	if err != nil {
		s.logger.Error("render submission email", zap.String("record_id", recordID), zap.Error(err))
		return
	}
	s.send(email, subject, "text/html", body)
}

func (s *NotificationService) sendStatusUpdate(email, kind, recordID, status, description, fallback, subject string) {
	if s == nil {
		return
	}
	if description == "" {
		description = fallback
	}
	buf := &bytes.Buffer{}
	err := statusUpdateTmpl.Execute(buf, map[string]string{
		"Kind":        kind,
		"RecordID":    recordID,
		"Status":      status,
		"Description": description,
	})
	if err != nil {
		s.logger.Error("render status email", zap.String("record_id", recordID), zap.Error(err))
		return
	}
	s.send(email, subject, "text/plain", buf.String())
}

func (s *NotificationService) send(to, subject, contentType, body string) {
	if s.sender == nil {
		s.logger.Debug("mail disabled, skipping notification", zap.String("to", to), zap.String("subject", subject))
		return
	}
	if to == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)

	if err := s.sender.DialAndSend(msg); err != nil {
		s.logger.Error("send notification email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		if s.metrics != nil {
			s.metrics.MailFailed()
		}
		return
	}
	s.logger.Info("notification email sent", zap.String("to", to), zap.String("subject", subject))
	if s.metrics != nil {
		s.metrics.MailSent()
	}
}

func renderHTML(tmpl *template.Template, data interface{}) (string, error) {
	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
