package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	d, ok := emailDomain("user@example.com")
	assert.True(t, ok)
	assert.Equal(t, "example.com", d)

	// The last @ wins for quoted local parts.
	d, ok = emailDomain(`"a@b"@c.com`)
	assert.True(t, ok)
	assert.Equal(t, "c.com", d)

	_, ok = emailDomain("no-at-sign")
	assert.False(t, ok)

	_, ok = emailDomain("trailing@")
	assert.False(t, ok)

	_, ok = emailDomain("")
	assert.False(t, ok)
}
