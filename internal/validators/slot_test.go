package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlotDate(t *testing.T) {
	assert.True(t, IsValidSlotDate("2024-06-01"))
	assert.False(t, IsValidSlotDate("01/06/2024"))
	assert.False(t, IsValidSlotDate("2024-13-01"))
	assert.False(t, IsValidSlotDate(""))
}

func TestIsValidSlotTime(t *testing.T) {
	assert.True(t, IsValidSlotTime("09:00"))
	assert.True(t, IsValidSlotTime("09:30"))
	assert.True(t, IsValidSlotTime("23:30"))

	// Off the half-hour grid.
	assert.False(t, IsValidSlotTime("09:15"))
	assert.False(t, IsValidSlotTime("09:01"))

	assert.False(t, IsValidSlotTime("25:00"))
	assert.False(t, IsValidSlotTime("9am"))
	assert.False(t, IsValidSlotTime(""))
}
