// Package verification issues and consumes single-use email verification codes.
package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/utils"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidCode   = errors.New("invalid code")
	ErrDelivery      = errors.New("error sending email")
)

// Sender delivers an HTML email.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Ledger struct {
	store    Store
	sender   Sender
	ttl      time.Duration
	generate func() (string, error)
	log      *zap.Logger
}

func NewLedger(store Store, sender Sender, ttl time.Duration, log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		store:    store,
		sender:   sender,
		ttl:      ttl,
		generate: utils.GenerateCode,
		log:      log,
	}
}

// RequestCode stores a fresh code for email, replacing any outstanding one,
// and mails it. The stored code stays valid even if delivery fails.
func (l *Ledger) RequestCode(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	code, err := l.generate()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if err := l.store.Save(ctx, email, code, l.ttl); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	if err := l.sender.Send(ctx, email, MailSubject, RenderMail(code)); err != nil {
		l.log.Error("verification email rejected", zap.String("email", email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	l.log.Info("verification code sent", zap.String("email", email))
	return nil
}

// VerifyCode consumes the code stored for email if it matches exactly.
func (l *Ledger) VerifyCode(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return ErrInvalidCode
	}
	ok, err := l.store.Consume(ctx, email, code)
	if err != nil {
		return fmt.Errorf("consume code: %w", err)
	}
	if !ok {
		return ErrInvalidCode
	}
	l.log.Info("verification code accepted", zap.String("email", email))
	return nil
}
