package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userbinhq/userbin/internal/model"
)

func TestUserFromModelIncludesCreatedAt(t *testing.T) {
	u := model.User{
		Username:  "alice",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(UserFromModel(&u))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","createdAt":"2024-01-01T12:00:00Z"}`, string(data))
}

func TestUserFromModelOmitsMissingCreatedAt(t *testing.T) {
	u := model.User{Username: "legacy"}

	data, err := json.Marshal(UserFromModel(&u))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"legacy"}`, string(data))
}

func TestUserNeverCarriesPasswordHash(t *testing.T) {
	u := model.User{Username: "alice", PasswordHash: "$2a$10$hash"}

	data, err := json.Marshal(UserFromModel(&u))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
}
