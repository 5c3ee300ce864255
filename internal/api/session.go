package api

import (
	"net/http"

	"github.com/brightofhouse/site/internal/apperror"
	"github.com/brightofhouse/site/internal/auth"
)

const (
	actionLogin  = "login"
	actionVerify = "verify"
)

// authBody accepts both the short and long credential field names.
type authBody struct {
	Action   string `json:"action"`
	User     string `json:"user"`
	Username string `json:"username"`
	Pass     string `json:"pass"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

func (b authBody) credentials() (string, string) {
	user, pass := b.User, b.Pass
	if user == "" {
		user = b.Username
	}
	if pass == "" {
		pass = b.Password
	}
	return user, pass
}

// authHandler runs one step of the admin login. login mails a code; verify
// exchanges the code for the session cookie.
func authHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body authBody
		if err := decodeJSON(w, r, &body); err != nil {
			apperror.WriteJSON(w, r, err)
			return
		}

		switch body.Action {
		case actionLogin:
			user, pass := body.credentials()
			if err := cfg.Auth.Login(r.Context(), user, pass); err != nil {
				apperror.WriteJSON(w, r, err)
				return
			}
			writeSuccess(w)

		case actionVerify:
			token, expires, err := cfg.Auth.Verify(r.Context(), body.Code)
			if err != nil {
				apperror.WriteJSON(w, r, err)
				return
			}
			auth.SetSessionCookie(w, token, expires, cfg.CookieSecure)
			writeSuccess(w)

		default:
			apperror.WriteJSON(w, r, apperror.WithMessage(apperror.ErrBadRequest, "Invalid action"))
		}
	}
}

func logoutHandler(cfg *Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth.ClearSessionCookie(w, cfg.CookieSecure)
		writeSuccess(w)
	}
}
