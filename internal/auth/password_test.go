package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	// A second hash of the same input differs because of the embedded salt.
	again, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestHashPassword_Empty(t *testing.T) {
	hash, err := HashPassword("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: "password123", hash: hash, want: true},
		{name: "wrong password", password: "password124", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "empty hash", password: "password123", hash: "", want: false},
		{name: "malformed hash", password: "password123", hash: "not-a-bcrypt-hash", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.hash))
		})
	}
}
