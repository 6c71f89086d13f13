package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userbinhq/userbin/internal/dependencies/mocks"
)

func newTestIssuer(t *testing.T) (*Issuer, *mocks.MockClock) {
	t.Helper()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	return New(Config{Secret: "test-secret"}, clk), clk
}

func TestIssueAndParse(t *testing.T) {
	issuer, _ := newTestIssuer(t)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := issuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestIssuedTokenExpiresAfterSixHours(t *testing.T) {
	issuer, clk := newTestIssuer(t)
	issuedAt := clk.CurrentTime

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	// Decode claims without validation to inspect the timestamps
	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.True(t, claims.IssuedAt.Time.Equal(issuedAt))
	assert.True(t, claims.ExpiresAt.Time.Equal(issuedAt.Add(6*time.Hour)))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer, clk := newTestIssuer(t)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	// Still valid just before expiry
	clk.Advance(6*time.Hour - time.Second)
	_, err = issuer.Parse(tok)
	require.NoError(t, err)

	clk.Advance(2 * time.Second)
	_, err = issuer.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer, clk := newTestIssuer(t)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	other := New(Config{Secret: "different-secret"}, clk)
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	issuer, _ := newTestIssuer(t)

	_, err := issuer.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCustomValidity(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	issuer := New(Config{Secret: "test-secret", Validity: time.Minute}, clk)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)
	_, err = issuer.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
