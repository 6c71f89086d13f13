package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userbinhq/userbin/internal/services/token"
	"github.com/userbinhq/userbin/internal/store/memory"
)

func TestNewDefaultsToMemoryStore(t *testing.T) {
	app, err := New(Config{
		TokenConfig: token.Config{Secret: "test-secret"},
	})
	require.NoError(t, err)

	assert.IsType(t, &memory.Store{}, app.Store)
	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.TokenIssuer)
}

func TestNewWiresWorkingAuthService(t *testing.T) {
	app, err := New(Config{
		StorageType: StorageTypeMemory,
		TokenConfig: token.Config{Secret: "test-secret"},
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = app.AuthService.Register(ctx, "alice", "secret123")
	require.NoError(t, err)

	tok, _, err := app.AuthService.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	username, err := app.TokenIssuer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestNewJSONBinRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeJSONBin})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "cassandra"})
	assert.Error(t, err)
}
