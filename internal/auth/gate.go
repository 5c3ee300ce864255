package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Gate issues and checks admin session tokens.
type Gate struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewGate(secret string, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Gate{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (g *Gate) TTL() time.Duration {
	return g.ttl
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authorize reports whether token is a live admin token signed with the
// gate's secret. Every failure looks the same to the caller.
func (g *Gate) Authorize(token string) bool {
	if token == "" || len(g.secret) == 0 {
		return false
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(g.now),
	)
	if err != nil || !parsed.Valid {
		return false
	}
	return c.Role == RoleAdmin
}

// Issue signs a new admin token and returns it with its expiry.
func (g *Gate) Issue() (string, time.Time, error) {
	if len(g.secret) == 0 {
		return "", time.Time{}, errors.New("auth: no signing secret")
	}
	now := g.now()
	exp := now.Add(g.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
