package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetDurations(t *testing.T) {
	cases := []struct {
		offset Offset
		want   time.Duration
	}{
		{OffsetOneHour, time.Hour},
		{OffsetThreeHours, 3 * time.Hour},
		{OffsetOneDay, 24 * time.Hour},
		{OffsetTwoDays, 48 * time.Hour},
		{OffsetOneWeek, 7 * 24 * time.Hour},
	}
	for _, tc := range cases {
		require.True(t, tc.offset.Valid(), "offset %q", tc.offset)
		assert.Equal(t, tc.want, tc.offset.Duration(), "offset %q", tc.offset)
	}
}

func TestComputeFireTime(t *testing.T) {
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	at, err := ComputeFireTime(OffsetOneDay, due)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC), at)

	at, err = ComputeFireTime(OffsetOneWeek, due)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), at)
}

func TestComputeFireTimeUnknownOffset(t *testing.T) {
	_, err := ComputeFireTime(Offset("2w"), time.Now())
	assert.Error(t, err)
}

func TestOffsetsOrder(t *testing.T) {
	assert.Equal(t, []Offset{OffsetOneHour, OffsetThreeHours, OffsetOneDay, OffsetTwoDays, OffsetOneWeek}, Offsets())
}

func TestOptionStatuses(t *testing.T) {
	// Due in 5 hours: 1h and 3h are still schedulable, the rest have passed.
	now := time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	statuses := OptionStatuses(due, now)
	require.Len(t, statuses, 5)

	byOffset := make(map[Offset]OptionStatus, len(statuses))
	for _, s := range statuses {
		byOffset[s.Value] = s
	}
	assert.False(t, byOffset[OffsetOneHour].Passed)
	assert.False(t, byOffset[OffsetThreeHours].Passed)
	assert.True(t, byOffset[OffsetOneDay].Passed)
	assert.True(t, byOffset[OffsetTwoDays].Passed)
	assert.True(t, byOffset[OffsetOneWeek].Passed)
}

func TestOptionStatusesBoundary(t *testing.T) {
	// A fire time exactly equal to now counts as passed; a strictly
	// future one does not.
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	now := due.Add(-3 * time.Hour)

	statuses := OptionStatuses(due, now)
	byOffset := make(map[Offset]OptionStatus, len(statuses))
	for _, s := range statuses {
		byOffset[s.Value] = s
	}
	assert.True(t, byOffset[OffsetThreeHours].Passed)
	assert.False(t, byOffset[OffsetOneHour].Passed)
}
