package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_External(t *testing.T) {
	assert.True(t, User{Username: "sso"}.External())
	assert.False(t, User{Username: "pw", PasswordHash: "$2a$10$x"}.External())
}

func TestUser_JSONOmitsHash(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Username: "sam", PasswordHash: "secret-hash"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.Contains(t, string(b), `"username":"sam"`)
}
