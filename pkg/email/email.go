package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go-jobboard-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	from string
	send func(*gomail.Message) error
}

// NewMailer returns nil when cfg has no host, so callers can treat mail as optional.
func NewMailer(cfg Config) *Mailer {
	if cfg.Host == "" {
		return nil
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{from: from, send: func(m *gomail.Message) error { return dialer.DialAndSend(m) }}
}

type applicantEmailData struct {
	OwnerName      string
	JobTitle       string
	Company        string
	ApplicantName  string
	ApplicantEmail string
	Headline       string
}

var applicantEmailTemplate = template.Must(template.New("applicant").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New applicant</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .label { font-weight: bold; color: #555; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New applicant</h1>
        </div>
        <div class="content">
            <p>Hi {{.OwnerName}},</p>
            <p>{{.ApplicantName}} ({{.ApplicantEmail}}) applied to <strong>{{.JobTitle}}</strong>{{if .Company}} at {{.Company}}{{end}}.</p>
            {{if .Headline}}<p><span class="label">Headline:</span> {{.Headline}}</p>{{end}}
        </div>
    </div>
</body>
</html>`))

// NotifyNewApplicant emails the job owner about an application.
func (m *Mailer) NotifyNewApplicant(ctx context.Context, owner domain.PublicUser, job domain.Job, applicant domain.PublicUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := applicantEmailData{
		OwnerName:      owner.Name,
		JobTitle:       job.Title,
		Company:        job.Company,
		ApplicantName:  applicant.Name,
		ApplicantEmail: applicant.Email,
	}
	if applicant.Profile != nil {
		data.Headline = applicant.Profile.Headline
	}

	body, err := render(applicantEmailTemplate, data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", owner.Email)
	msg.SetHeader("Reply-To", applicant.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New applicant for %s", job.Title))
	msg.SetBody("text/html", body)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
