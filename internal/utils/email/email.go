package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/underwriting-service/internal/config"
	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/Dan9191/underwriting-service/internal/report"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// BuildAnalysisSummary composes the summary email for an analysis
func (s *Sender) BuildAnalysisSummary(to string, a *models.Analysis) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Underwriting: %s - %s", a.Property.Address, a.Recommendation.Verdict)

	body := "Hello,\n\nHere is the underwriting summary for the property you asked about.\n\n"
	body += report.Summary(a)
	if a.Plan.TargetMet && len(a.Plan.Steps) > 0 {
		body += fmt.Sprintf("\nThe %d recommended changes reach your target for %s.\n",
			len(a.Plan.Steps), report.USD(a.Plan.TotalCost))
	} else if !a.Plan.TargetMet {
		body += "\nNo combination of the available changes reaches your target return.\n"
	}
	body += "\nBest regards,\nUnderwriting Service"
	e.Text = []byte(body)
	return e
}

// SendAnalysisSummary emails the analysis digest to a client
func (s *Sender) SendAnalysisSummary(to string, a *models.Analysis) error {
	e := s.BuildAnalysisSummary(to, a)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send analysis %s to %s: %v", a.ID, to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
