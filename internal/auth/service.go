// Package auth implements the two-step admin login: a password check that
// mails a one-time code, then a code check that issues a signed session
// token.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/email"
	"github.com/brightofhouse/site/internal/logger"
	"github.com/brightofhouse/site/internal/metrics"
)

type ServiceConfig struct {
	Credentials Credentials
	AdminEmail  string
	CodeTTL     time.Duration
}

type Service struct {
	cfg      ServiceConfig
	gate     *Gate
	codes    CodeStore
	mailer   email.Mailer
	composer email.Composer
	genCode  func() (string, error)
}

func NewService(cfg ServiceConfig, gate *Gate, codes CodeStore, mailer email.Mailer, composer email.Composer) *Service {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 10 * time.Minute
	}
	return &Service{
		cfg:      cfg,
		gate:     gate,
		codes:    codes,
		mailer:   mailer,
		composer: composer,
		genCode:  GenerateCode,
	}
}

// Login checks the admin credentials and mails a fresh code.
func (s *Service) Login(ctx context.Context, user, pass string) (err error) {
	defer func() { metrics.RecordAuthOperation("login", err) }()
	log := logger.FromContext(ctx)

	if !s.cfg.Credentials.Match(user, pass) {
		log.Warn("admin login rejected")
		return apperror.ErrInvalidCredentials
	}

	code, err := s.genCode()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrInternal)
	}
	if err := s.codes.Save(ctx, code, s.cfg.CodeTTL); err != nil {
		return apperror.Wrap(fmt.Errorf("save code: %w", err), apperror.ErrInternal)
	}

	msg, err := s.composer.AuthCode(s.cfg.AdminEmail, code, s.cfg.CodeTTL)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrMailFailed)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return apperror.Wrap(err, apperror.ErrMailFailed)
	}

	log.Info("admin login code sent")
	return nil
}

// Verify consumes code and returns a session token with its expiry.
func (s *Service) Verify(ctx context.Context, code string) (token string, expires time.Time, err error) {
	defer func() { metrics.RecordAuthOperation("verify", err) }()

	if code == "" {
		return "", time.Time{}, apperror.ErrInvalidCode
	}

	ok, err := s.codes.Consume(ctx, code)
	if err != nil {
		return "", time.Time{}, apperror.Wrap(fmt.Errorf("consume code: %w", err), apperror.ErrInternal)
	}
	if !ok {
		logger.FromContext(ctx).Warn("admin code rejected")
		return "", time.Time{}, apperror.ErrInvalidCode
	}

	token, expires, err = s.gate.Issue()
	if err != nil {
		return "", time.Time{}, apperror.Wrap(err, apperror.ErrInternal)
	}
	logger.FromContext(ctx).Info("admin session issued", "expires", expires)
	return token, expires, nil
}

func (s *Service) Gate() *Gate {
	return s.gate
}
