package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncAttemptResult_String(t *testing.T) {
	assert.Equal(t, "success", SyncSuccess.String())
	assert.Equal(t, "unauthorized", SyncUnauthorized.String())
	assert.Equal(t, "transport_error", SyncTransportError.String())
}

func TestCredential_IsEmpty(t *testing.T) {
	assert.True(t, Credential{}.IsEmpty())
	assert.False(t, Credential{Token: "t"}.IsEmpty())
}
