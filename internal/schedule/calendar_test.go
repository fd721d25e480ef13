package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "wednesday", in: date(2024, 5, 1), want: date(2024, 4, 29)},
		{name: "monday is its own start", in: date(2024, 4, 29), want: date(2024, 4, 29)},
		{name: "sunday belongs to the previous monday", in: date(2024, 5, 5), want: date(2024, 4, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfWeek(tt.in))
		})
	}
}

func TestBuildWeekGrid(t *testing.T) {
	grid := BuildWeekGrid(date(2024, 5, 1)) // a Wednesday

	require.Len(t, grid, 7)
	assert.Equal(t, time.Monday, grid[0].Weekday())
	assert.Equal(t, time.Sunday, grid[6].Weekday())
	assert.Equal(t, date(2024, 4, 29), grid[0])
	assert.Equal(t, date(2024, 5, 5), grid[6])
}

func TestBuildMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		in        time.Time
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "may 2024 pads back to april 29",
			in:        date(2024, 5, 15),
			wantFirst: date(2024, 4, 29),
			wantLast:  date(2024, 6, 9),
		},
		{
			name:      "month starting on monday has no leading padding",
			in:        date(2024, 7, 10), // July 1 2024 is a Monday
			wantFirst: date(2024, 7, 1),
			wantLast:  date(2024, 8, 11),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(tt.in)

			require.Len(t, grid, 42)
			assert.Equal(t, time.Monday, grid[0].Weekday())
			assert.Equal(t, tt.wantFirst, grid[0])
			assert.Equal(t, tt.wantLast, grid[41])
			for i := 1; i < len(grid); i++ {
				assert.Equal(t, grid[i-1].AddDate(0, 0, 1), grid[i])
			}
		})
	}
}

func TestDateMatches(t *testing.T) {
	may1 := date(2024, 5, 1)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "rfc3339 with time of day", value: "2024-05-01T17:00:00Z", want: true},
		{name: "bare date", value: "2024-05-01", want: true},
		{name: "no offset timestamp", value: "2024-05-01T08:30:00", want: true},
		{name: "different day", value: "2024-05-02T00:00:00Z", want: false},
		{name: "malformed never matches and never panics", value: "not-a-date", want: false},
		{name: "empty string", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateMatches(tt.value, may1))
		})
	}
}

func TestPartitionByWeek(t *testing.T) {
	now := date(2024, 5, 1) // Wednesday; week runs Apr 29 .. May 5

	register := func(d time.Time) *domain.WorkingSlotRegister {
		return &domain.WorkingSlotRegister{ID: uuid.New(), WorkingDate: d, Status: domain.RegisterStatusOnhold}
	}

	monday := register(date(2024, 4, 29))
	sunday := register(date(2024, 5, 5))
	before := register(date(2024, 4, 28))
	after := register(date(2024, 5, 6))

	current, other := PartitionByWeek([]*domain.WorkingSlotRegister{monday, sunday, before, after}, now)

	assert.Equal(t, []*domain.WorkingSlotRegister{monday, sunday}, current)
	assert.Equal(t, []*domain.WorkingSlotRegister{before, after}, other)
}

func TestBuildCells(t *testing.T) {
	may1 := date(2024, 5, 1)
	grid := BuildMonthGrid(may1)

	schedule := &domain.StaffSchedule{ID: uuid.New(), WorkingDate: time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)}
	register := &domain.WorkingSlotRegister{ID: uuid.New(), WorkingDate: date(2024, 5, 3)}
	swap := &domain.SwapWorkingSlotRequest{
		ID:              uuid.New(),
		WorkingDateFrom: date(2024, 5, 1),
		WorkingDateTo:   date(2024, 5, 4),
	}

	cells := BuildCells(grid, time.May,
		[]*domain.StaffSchedule{schedule},
		[]*domain.WorkingSlotRegister{register},
		[]*domain.SwapWorkingSlotRequest{swap},
	)

	require.Len(t, cells, 42)

	byDay := make(map[string]Cell)
	for _, cell := range cells {
		byDay[cell.Date.Format("2006-01-02")] = cell
	}

	// schedule lands on May 1 despite its embedded time of day
	assert.Len(t, byDay["2024-05-01"].Schedules, 1)
	assert.Len(t, byDay["2024-05-02"].Schedules, 0)

	assert.Len(t, byDay["2024-05-03"].Registers, 1)

	// swap request matches both of its endpoints
	assert.Len(t, byDay["2024-05-01"].SwapRequests, 1)
	assert.Len(t, byDay["2024-05-04"].SwapRequests, 1)
	assert.Len(t, byDay["2024-05-02"].SwapRequests, 0)

	// leading cells from april are outside the month
	assert.False(t, byDay["2024-04-29"].InMonth)
	assert.True(t, byDay["2024-05-01"].InMonth)
}
