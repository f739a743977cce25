package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	now := FixedClock(at)

	assert.Equal(t, at, now())
	assert.Equal(t, at, now(), "fixed clock never advances")
}

func TestSteppingClock(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	now := SteppingClock(start, time.Second)

	assert.Equal(t, start, now())
	assert.Equal(t, start.Add(time.Second), now())
	assert.Equal(t, start.Add(2*time.Second), now())
}
