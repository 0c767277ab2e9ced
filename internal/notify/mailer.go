package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vishnupriya759285/velookara/internal/config"

	"gopkg.in/gomail.v2"
)

// Mail 是一封純文字通知信
type Mail struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

var newDialer = func(cfg config.EmailConfig) dialer {
	return gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
}

// SMTPMailer 透過 gomail 寄信
type SMTPMailer struct {
	cfg    config.EmailConfig
	logger *slog.Logger
}

func NewSMTPMailer(cfg config.EmailConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send 設定不完整或收件人為空時略過，不視為錯誤
func (s *SMTPMailer) Send(ctx context.Context, m Mail) error {
	if !s.cfg.Enabled() {
		s.logger.Warn("email config missing, skip notification")
		return nil
	}
	if strings.TrimSpace(m.To) == "" {
		s.logger.Warn("email recipient empty, skip notification", slog.String("subject", m.Subject))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.FromEmail)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Body)

	if err := newDialer(s.cfg).DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	s.logger.Info("email notification sent", slog.String("to", m.To), slog.String("subject", m.Subject))
	return nil
}

type NopMailer struct{}

func (NopMailer) Send(context.Context, Mail) error { return nil }
