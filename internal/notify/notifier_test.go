package notify

import (
	"testing"
	"time"

	"github.com/shenikar/crime_file_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestNotifier_ExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)}
	n := New(5*time.Second, clock.Now)

	n.Success("Crime record saved successfully!")
	require.Len(t, n.Active(), 1)

	clock.now = clock.now.Add(4999 * time.Millisecond)
	assert.Len(t, n.Active(), 1)

	clock.now = clock.now.Add(time.Millisecond)
	assert.Empty(t, n.Active())
}

func TestNotifier_OrderAndSeverity(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)}
	n := New(0, clock.Now)

	n.Success("saved")
	clock.now = clock.now.Add(time.Second)
	n.Error("failed")
	clock.now = clock.now.Add(time.Second)
	n.Info("missing")

	active := n.Active()
	require.Len(t, active, 3)
	assert.Equal(t, models.SeveritySuccess, active[0].Severity)
	assert.Equal(t, models.SeverityError, active[1].Severity)
	assert.Equal(t, models.SeverityInfo, active[2].Severity)
	assert.Equal(t, active[0].CreatedAt.Add(DefaultTTL), active[0].ExpiresAt)
	assert.NotEqual(t, active[0].ID, active[1].ID)

	clock.now = clock.now.Add(3500 * time.Millisecond)
	active = n.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "failed", active[0].Message)
}
