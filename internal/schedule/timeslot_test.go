package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAllSlots(t *testing.T) {
	slots := GenerateAllSlots()

	require.Len(t, slots, 96)
	assert.Equal(t, "00:00", slots[0])
	assert.Equal(t, "23:45", slots[95])

	seen := make(map[string]bool)
	for i, slot := range slots {
		assert.False(t, seen[slot], "duplicate slot %s", slot)
		seen[slot] = true
		if i > 0 {
			assert.Less(t, slots[i-1], slot, "slots must be ascending")
		}
	}

	// idempotent across calls
	assert.Equal(t, slots, GenerateAllSlots())
}

func TestFilterValidSlots(t *testing.T) {
	all := GenerateAllSlots()

	type args struct {
		targetDate time.Time
		now        time.Time
	}
	tests := []struct {
		name      string
		args      args
		wantLen   int
		wantFirst string
	}{
		{
			name: "other day returns catalog unchanged",
			args: args{
				targetDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
				now:        time.Date(2024, 5, 1, 10, 7, 0, 0, time.UTC),
			},
			wantLen:   96,
			wantFirst: "00:00",
		},
		{
			name: "today at 10:07 rounds up to 10:15",
			args: args{
				targetDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				now:        time.Date(2024, 5, 1, 10, 7, 0, 0, time.UTC),
			},
			wantLen:   55, // 10:15 .. 23:45
			wantFirst: "10:15",
		},
		{
			name: "today exactly on a boundary keeps that slot",
			args: args{
				targetDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				now:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			},
			wantLen:   56,
			wantFirst: "10:00",
		},
		{
			name: "minute ceiling of 60 skips to the next hour",
			args: args{
				targetDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				now:        time.Date(2024, 5, 1, 10, 50, 0, 0, time.UTC),
			},
			wantLen:   52, // 11:00 .. 23:45
			wantFirst: "11:00",
		},
		{
			name: "end of day leaves nothing",
			args: args{
				targetDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				now:        time.Date(2024, 5, 1, 23, 46, 0, 0, time.UTC),
			},
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterValidSlots(all, tt.args.targetDate, tt.args.now)

			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0])
			}
		})
	}
}

func TestFilterValidSlots_excludesPastBoundary(t *testing.T) {
	all := GenerateAllSlots()
	now := time.Date(2024, 5, 1, 10, 7, 0, 0, time.UTC)

	got := FilterValidSlots(all, now, now)

	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "09:45")
	assert.Contains(t, got, "10:15")
	assert.Contains(t, got, "23:45")
}
