package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("emp-1", "Alice", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "emp-1", claims.EmployeeID)
	assert.Equal(t, "Alice", claims.Name)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("emp-1", "Alice", "secret")
	assert.NoError(t, err)

	_, err = ValidateSessionToken(token, "other-secret")
	assert.Error(t, err)
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token", "secret")
	assert.Error(t, err)
}
