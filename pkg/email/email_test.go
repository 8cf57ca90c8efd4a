package email

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestNewMailerUnconfigured(t *testing.T) {
	assert.Nil(t, NewMailer(Config{}))
}

func TestNotifyNewApplicant(t *testing.T) {
	m := NewMailer(Config{Host: "smtp.example.com", Port: 587, Username: "jobs@example.com"})
	require.NotNil(t, m)

	var sent *gomail.Message
	m.send = func(msg *gomail.Message) error {
		sent = msg
		return nil
	}

	owner := domain.PublicUser{Name: "Rita", Email: "rita@example.com"}
	job := domain.Job{Title: "Go Developer", Company: "Acme"}
	applicant := domain.PublicUser{Name: "Eve <b>", Email: "eve@example.com", Profile: &domain.Profile{Headline: "Gopher"}}

	require.NoError(t, m.NotifyNewApplicant(context.Background(), owner, job, applicant))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"jobs@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"rita@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"eve@example.com"}, sent.GetHeader("Reply-To"))
	assert.Equal(t, []string{"New applicant for Go Developer"}, sent.GetHeader("Subject"))

}

func TestApplicantTemplateEscapes(t *testing.T) {
	body, err := render(applicantEmailTemplate, applicantEmailData{
		OwnerName:     "Rita",
		JobTitle:      "Go Developer",
		Company:       "Acme",
		ApplicantName: "Eve <b>",
		Headline:      "Gopher",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "at Acme")
	assert.Contains(t, body, "Gopher")
	assert.Contains(t, body, "Eve &lt;b&gt;")
}

func TestNotifyNewApplicantSendFailure(t *testing.T) {
	m := NewMailer(Config{Host: "smtp.example.com", From: "noreply@example.com"})
	m.send = func(*gomail.Message) error { return errors.New("connection refused") }

	err := m.NotifyNewApplicant(context.Background(), domain.PublicUser{Email: "o@example.com"}, domain.Job{Title: "X"}, domain.PublicUser{})
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewMailerDialsConfiguredServer(t *testing.T) {
	m := NewMailer(Config{Host: "127.0.0.1", Port: 1, From: "noreply@example.com"})
	require.NotNil(t, m)

	err := m.NotifyNewApplicant(context.Background(), domain.PublicUser{Email: "o@example.com"}, domain.Job{Title: "X"}, domain.PublicUser{Email: "a@example.com"})
	assert.ErrorContains(t, err, "failed to send email")
}
