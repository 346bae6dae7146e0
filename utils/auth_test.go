package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviu-server/config"
	"reviu-server/types"
)

func TestMain(m *testing.M) {
	config.Load()
	os.Exit(m.Run())
}

func TestHashPin(t *testing.T) {
	hash, err := HashPin("2024")
	require.NoError(t, err)
	assert.NotEqual(t, "2024", hash)

	assert.True(t, CheckPinHash("2024", hash))
	assert.False(t, CheckPinHash("2025", hash))
	assert.False(t, CheckPinHash("2024", "not-a-hash"))
}

func TestScopeTokenRoundTrip(t *testing.T) {
	t.Run("manager token", func(t *testing.T) {
		token, err := GenerateScopeToken("TEN-1001", types.RoleManager)
		require.NoError(t, err)

		claims, err := VerifyScopeToken(token)
		require.NoError(t, err)
		assert.Equal(t, "TEN-1001", claims.TenantID)
		assert.Equal(t, types.RoleManager, claims.Role)
	})

	t.Run("admin token has no tenant", func(t *testing.T) {
		token, err := GenerateScopeToken("", types.RoleAdmin)
		require.NoError(t, err)

		claims, err := VerifyScopeToken(token)
		require.NoError(t, err)
		assert.Empty(t, claims.TenantID)
		assert.Equal(t, types.RoleAdmin, claims.Role)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := VerifyScopeToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestIDGeneration(t *testing.T) {
	assert.Regexp(t, `^TEN-\d{4}$`, NewTenantID())
	assert.Regexp(t, `^WTR-\d{4}$`, NewWaiterID())
}

func TestWaiterFeedbackURL(t *testing.T) {
	link := WaiterFeedbackURL("https://app.example.com/", "TEN-1001", "WTR-2001")
	assert.Equal(t, "https://app.example.com/?t=TEN-1001&wtr=WTR-2001", link)
}

func TestQRCodeImageURL(t *testing.T) {
	got := QRCodeImageURL("https://app.example.com/?t=TEN-1001&wtr=WTR-2001")
	assert.Contains(t, got, "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=")
	assert.Contains(t, got, "WTR-2001")
}
