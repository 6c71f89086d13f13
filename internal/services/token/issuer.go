package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userbinhq/userbin/internal/dependencies/clock"
)

// ErrInvalidToken indicates a token that failed signature or expiry checks
var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultValidity is how long issued tokens remain valid
const DefaultValidity = 6 * time.Hour

// Claims carries the standard claims plus the authenticated username
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Issuer signs short-lived bearer tokens with a process-wide shared secret.
// Tokens are stateless: validity is solely time-bound, with no revocation.
type Issuer struct {
	secret   []byte
	validity time.Duration
	clock    clock.Clock
}

// Config holds configuration for the token issuer
type Config struct {
	Secret   string
	Validity time.Duration
}

// New creates a new Issuer
func New(cfg Config, clk clock.Clock) *Issuer {
	if cfg.Validity == 0 {
		cfg.Validity = DefaultValidity
	}
	return &Issuer{
		secret:   []byte(cfg.Secret),
		validity: cfg.Validity,
		clock:    clk,
	}
}

// Issue creates a signed HS256 token for the given username
func (i *Issuer) Issue(username string) (string, error) {
	now := i.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		Username: username,
	})

	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates a token against the issuer's secret and clock, returning
// the username it carries. No handler in the HTTP surface requires this yet;
// it exists for clients that want to verify tokens they hold.
func (i *Issuer) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.clock.Now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
