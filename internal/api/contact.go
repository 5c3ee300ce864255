package api

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/email"
	"github.com/brightofhouse/site/internal/logger"
)

const maxContactMessage = 5000

type contactBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Tel     string `json:"tel"`
	Message string `json:"message"`
}

func (b *contactBody) validate() error {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Tel = strings.TrimSpace(b.Tel)
	b.Message = strings.TrimSpace(b.Message)

	if b.Name == "" || b.Email == "" || b.Message == "" {
		return apperror.WithMessage(apperror.ErrBadRequest, "お名前、メールアドレス、お問い合わせ内容は必須です")
	}
	if _, err := mail.ParseAddress(b.Email); err != nil {
		return apperror.WithMessage(apperror.ErrBadRequest, "メールアドレスの形式が正しくありません")
	}
	// Header injection through the reply-to and subject lines.
	if strings.ContainsAny(b.Name+b.Email+b.Tel, "\r\n") {
		return apperror.ErrBadRequest
	}
	if len([]rune(b.Message)) > maxContactMessage {
		return apperror.WithMessage(apperror.ErrBadRequest, "お問い合わせ内容が長すぎます")
	}
	return nil
}

// contactHandler mails the submission to the office and an auto-reply to the
// sender. A failed auto-reply is reported as a failure even though the office
// copy went out, so the visitor knows to retry or call.
func contactHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body contactBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}
		if err := body.validate(); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)
		in := email.Contact{Name: body.Name, Email: body.Email, Tel: body.Tel, Message: body.Message}

		notify, err := cfg.Composer.ContactNotification(cfg.ContactMailTo, in)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrMailFailed))
			return
		}
		if err := cfg.Mailer.Send(ctx, notify); err != nil {
			log.Error("contact notification failed", "error", err)
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrMailFailed))
			return
		}

		reply, err := cfg.Composer.ContactAutoReply(in)
		if err != nil {
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrMailFailed))
			return
		}
		if err := cfg.Mailer.Send(ctx, reply); err != nil {
			log.Error("contact auto-reply failed", "error", err)
			apperror.WriteJSON(w, r, apperror.Wrap(err, apperror.ErrMailFailed))
			return
		}

		log.Info("contact message delivered")
		writeSuccess(w)
	}
}
