package main

import (
	"testing"
	"time"

	"github.com/robfig/cron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySyncScheduleFiresOncePerDay(t *testing.T) {
	sched, err := cron.Parse(dailySyncSpec)
	require.NoError(t, err)

	from := time.Date(2026, 8, 30, 0, 30, 0, 0, time.UTC)
	next := sched.Next(from)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), next,
		"mid-day start must roll over to the next midnight, not the next hour")

	after := sched.Next(next)
	assert.Equal(t, 24*time.Hour, after.Sub(next))
}
