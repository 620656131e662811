package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Without a live redis the helpers must degrade to no-ops instead of
// failing requests.
func TestDisabledCacheDegradesGracefully(t *testing.T) {
	Client = nil

	assert.False(t, Enabled())
	assert.NoError(t, RevokeToken("some-jti", time.Minute))
	assert.False(t, IsTokenRevoked("some-jti"))
	assert.NotPanics(t, func() { InvalidateProgress(42) })
}

func TestProgressKeyPerUser(t *testing.T) {
	assert.Equal(t, "progress:7", ProgressKey(7))
	assert.NotEqual(t, ProgressKey(1), ProgressKey(2))
}
