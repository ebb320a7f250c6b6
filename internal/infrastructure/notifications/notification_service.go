package notifications

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"

	"github.com/ibroximov13/FindCourse/domain"
	"github.com/ibroximov13/FindCourse/internal/logging"
)

// SMTPSettings configures outbound mail delivery
type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NotificationServiceImpl implements domain.NotificationService: email over
// SMTP, SMS over Twilio. Either channel falls back to logging the message
// when its credentials are not configured.
type NotificationServiceImpl struct {
	smtp       SMTPSettings
	dialer     *gomail.Dialer
	twilio     *twilio.RestClient
	fromNumber string
	log        zerolog.Logger
}

// NewNotificationService creates a notification service
func NewNotificationService(smtp SMTPSettings, twilioSID, twilioToken, twilioFrom string) domain.NotificationService {
	svc := &NotificationServiceImpl{
		smtp:       smtp,
		fromNumber: twilioFrom,
		log:        logging.Component("notifications"),
	}
	if smtp.Host != "" {
		svc.dialer = gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	}
	if twilioSID != "" {
		svc.twilio = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: twilioSID,
			Password: twilioToken,
		})
	}
	return svc
}

// SendEmail implements domain.NotificationService
func (n *NotificationServiceImpl) SendEmail(to, subject, body string) error {
	if n.dialer == nil {
		n.log.Info().Str("to", to).Str("subject", subject).Msg("mock email (SMTP not configured)")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.smtp.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendSMS implements domain.NotificationService
func (n *NotificationServiceImpl) SendSMS(to, message string) error {
	if n.twilio == nil || n.fromNumber == "" {
		n.log.Info().Str("to", to).Msg("mock SMS (Twilio not configured)")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.fromNumber)
	params.SetBody(message)

	if _, err := n.twilio.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
