package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	texttemplate "text/template"
	"time"

	"github.com/ironnest/ironnest-backend/config"
	"github.com/ironnest/ironnest-backend/logger"
	"github.com/ironnest/ironnest-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService relays contact and booking notifications through Resend.
// Notification sends are best effort: a missing API key or provider failure
// is reported as a false return, never an error, so record persistence is
// never blocked by the relay.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress, "configured", cfg.ResendAPIKey != "")
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ironnest_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ironnest_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ironnest_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// Configured reports whether the relay has an API key to send with.
func (s *EmailService) Configured() bool {
	return s.config.ResendAPIKey != ""
}

// sendTimeout bounds each provider call. Falls back to 10s when the config
// carries no value.
func (s *EmailService) sendTimeout() time.Duration {
	if s.config.TimeoutSeconds > 0 {
		return time.Duration(s.config.TimeoutSeconds) * time.Second
	}
	return 10 * time.Second
}

// Send delivers a raw email message and returns the provider message ID.
func (s *EmailService) Send(ctx context.Context, msg *types.EmailMessage) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("email relay is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()

	startTime := time.Now()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLContent,
		Text:    msg.TextContent,
	}
	if params.Text == "" {
		params.Text = msg.Subject
	}

	resp, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		logger.GetLogger().Errorw("Failed to send email",
			"error", err,
			"to", logger.MaskEmail(msg.To),
			"subject", msg.Subject)
		return "", fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	logger.GetLogger().Infow("Email sent successfully",
		"to", logger.MaskEmail(msg.To),
		"subject", msg.Subject,
		"messageId", resp.Id)
	return resp.Id, nil
}

// SendContactNotification notifies the business inbox about a new contact
// form submission. Returns whether the notification was delivered.
func (s *EmailService) SendContactNotification(ctx context.Context, contact *types.Contact) bool {
	subject := fmt.Sprintf("New Contact Form Submission: %s", contact.Subject)
	return s.notify(ctx, s.config.BusinessEmail, subject,
		contactNotificationTemplate, contactNotificationTextTemplate, contact)
}

// SendBookingNotification notifies the business inbox about a new
// consultation booking. Returns whether the notification was delivered.
func (s *EmailService) SendBookingNotification(ctx context.Context, booking *types.Booking) bool {
	subject := fmt.Sprintf("New Consultation Booking: %s", booking.ProjectType)
	return s.notify(ctx, s.config.BusinessEmail, subject,
		bookingNotificationTemplate, bookingNotificationTextTemplate, booking)
}

// SendBookingConfirmation sends the client a confirmation of their
// consultation request. Returns whether the confirmation was delivered.
func (s *EmailService) SendBookingConfirmation(ctx context.Context, booking *types.Booking) bool {
	subject := "Your IronNest Consultation Request"
	return s.notify(ctx, booking.Email, subject,
		bookingConfirmationTemplate, bookingConfirmationTextTemplate, booking)
}

// notify renders both the HTML and plain-text bodies of a notification and
// sends it. Failures are logged and reported as false.
func (s *EmailService) notify(ctx context.Context, to, subject, htmlTmpl, textTmpl string, data interface{}) bool {
	log := logger.GetLogger()
	if !s.Configured() {
		log.Warnw("Email relay not configured, skipping notification",
			"to", logger.MaskEmail(to), "subject", subject)
		return false
	}
	if to == "" {
		log.Warnw("No recipient configured for notification", "subject", subject)
		return false
	}

	htmlContent, err := renderHTML(htmlTmpl, data)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render email body", "error", err)
		return false
	}
	textContent, err := renderText(textTmpl, data)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render email text body", "error", err)
		return false
	}

	_, err = s.Send(ctx, &types.EmailMessage{
		To:          to,
		Subject:     subject,
		HTMLContent: htmlContent,
		TextContent: textContent,
	})
	return err == nil
}

func renderHTML(tmplText string, data interface{}) (string, error) {
	tmpl, err := template.New("notification").Parse(tmplText)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(tmplText string, data interface{}) (string, error) {
	tmpl, err := texttemplate.New("notification").Parse(tmplText)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Template constants
const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #D64218;
            font-size: 24px;
            margin-bottom: 20px;
        }
        .field {
            margin-bottom: 12px;
            font-size: 15px;
            line-height: 1.5;
        }
        .label {
            font-weight: bold;
            color: #555555;
        }
        .message {
            background-color: #f2f2f2;
            padding: 15px;
            border-radius: 8px;
            white-space: pre-wrap;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>New Contact Form Submission</h1>
        <div class="field"><span class="label">Name:</span> {{.Name}}</div>
        <div class="field"><span class="label">Email:</span> {{.Email}}</div>
        <div class="field"><span class="label">Phone:</span> {{.Phone}}</div>
        <div class="field"><span class="label">Subject:</span> {{.Subject}}</div>
        <div class="field"><span class="label">Message:</span></div>
        <div class="message">{{.Message}}</div>
    </div>
</body>
</html>`

const bookingNotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Consultation Booking</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #D64218;
            font-size: 24px;
            margin-bottom: 20px;
        }
        .field {
            margin-bottom: 12px;
            font-size: 15px;
            line-height: 1.5;
        }
        .label {
            font-weight: bold;
            color: #555555;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>New Consultation Booking</h1>
        <div class="field"><span class="label">Name:</span> {{.Name}}</div>
        <div class="field"><span class="label">Email:</span> {{.Email}}</div>
        <div class="field"><span class="label">Phone:</span> {{.Phone}}</div>
        <div class="field"><span class="label">Project Type:</span> {{.ProjectType}}</div>
        <div class="field"><span class="label">Budget:</span> {{.Budget}}</div>
        <div class="field"><span class="label">Location:</span> {{.Location}}</div>
        <div class="field"><span class="label">Date:</span> {{.Date}}</div>
        <div class="field"><span class="label">Time:</span> {{.Time}}</div>
        <div class="field"><span class="label">Message:</span> {{.Message}}</div>
    </div>
</body>
</html>`

const bookingConfirmationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Your IronNest Consultation Request</title>
    <style>
        body {
            font-family: 'sans-serif';
            background-color: #f7f7f7;
            color: #333333;
            margin: 0;
            padding: 20px;
            text-align: center;
        }
        .container {
            max-width: 600px;
            margin: 20px auto;
            background-color: #ffffff;
            padding: 30px;
            border-radius: 12px;
            box-shadow: 0 4px 8px rgba(0, 0, 0, 0.05);
        }
        h1 {
            color: #D64218;
            font-size: 26px;
            margin-bottom: 20px;
        }
        p {
            font-size: 16px;
            line-height: 1.6;
            margin-bottom: 20px;
        }
        .details {
            text-align: left;
            background-color: #f2f2f2;
            padding: 15px;
            border-radius: 8px;
            font-size: 15px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Thanks for Booking a Consultation!</h1>
        <p>Hi {{.Name}},</p>
        <p>We have received your consultation request and will be in touch shortly to confirm the details.</p>
        <div class="details">
            <p><strong>Project:</strong> {{.ProjectType}}</p>
            <p><strong>Date:</strong> {{.Date}} at {{.Time}}</p>
            <p><strong>Location:</strong> {{.Location}}</p>
        </div>
        <p>The IronNest Team</p>
    </div>
</body>
</html>`

const contactNotificationTextTemplate = `New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Subject: {{.Subject}}

Message:
{{.Message}}
`

const bookingNotificationTextTemplate = `New Consultation Booking

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Project Type: {{.ProjectType}}
Budget: {{.Budget}}
Location: {{.Location}}
Date: {{.Date}}
Time: {{.Time}}

Message:
{{.Message}}
`

const bookingConfirmationTextTemplate = `Thanks for Booking a Consultation!

Hi {{.Name}},

We have received your consultation request and will be in touch shortly
to confirm the details.

Project: {{.ProjectType}}
Date: {{.Date}} at {{.Time}}
Location: {{.Location}}

The IronNest Team
`
