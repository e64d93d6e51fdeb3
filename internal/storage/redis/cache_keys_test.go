package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "grid:chat:42", GridKey(42))
	assert.Equal(t, "grid:chat:-1001234", GridKey(-1001234))
	assert.Equal(t, "ratelimit:user:7", RateLimitKey(7))
}
