package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/config"
)

func newTestHandler(t *testing.T, now time.Time) *Handler {
	t.Helper()

	h, err := NewHandler(&config.Config{}, nil, nil, nil)
	require.NoError(t, err)
	h.now = func() time.Time { return now }

	return h
}

func decodeResponse(t *testing.T, body []byte) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestGetTimeSlots(t *testing.T) {
	now := time.Date(2024, time.May, 15, 10, 7, 0, 0, time.UTC)

	tests := []struct {
		name       string
		date       string
		wantOK     bool
		wantCount  int
		wantFirst  string
		wantErrMsg string
	}{
		{
			name:      "future date returns the full catalog",
			date:      "2024-05-16",
			wantOK:    true,
			wantCount: 96,
			wantFirst: "00:00",
		},
		{
			name:      "past date returns the full catalog",
			date:      "2024-05-14",
			wantOK:    true,
			wantCount: 96,
			wantFirst: "00:00",
		},
		{
			name:      "today filters out slots before the next boundary",
			date:      "2024-05-15",
			wantOK:    true,
			wantCount: 55,
			wantFirst: "10:15",
		},
		{
			name:       "missing date is rejected",
			date:       "",
			wantOK:     false,
			wantErrMsg: "date query parameter is required",
		},
		{
			name:       "malformed date is rejected",
			date:       "15/05/2024",
			wantOK:     false,
			wantErrMsg: "date must use the YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, now)

			r := httptest.NewRequest("GET", "/working-slots/time-slots?date="+tt.date, nil)
			w := httptest.NewRecorder()
			h.GetTimeSlots(w, r)

			resp := decodeResponse(t, w.Body.Bytes())
			assert.Equal(t, tt.wantOK, resp.Success)

			if !tt.wantOK {
				assert.Equal(t, tt.wantErrMsg, resp.Message)
				return
			}

			result := resp.Result.(map[string]any)
			items := result["items"].([]any)
			assert.Len(t, items, tt.wantCount)
			assert.Equal(t, float64(tt.wantCount), result["totalCount"])
			assert.Equal(t, tt.wantFirst, items[0])
		})
	}
}

func TestGetTimeSlotsNoneLeftToday(t *testing.T) {
	// 23:46 rounds up to a boundary past the last slot of the day
	h := newTestHandler(t, time.Date(2024, time.May, 15, 23, 46, 0, 0, time.UTC))

	r := httptest.NewRequest("GET", "/working-slots/time-slots?date=2024-05-15", nil)
	w := httptest.NewRecorder()
	h.GetTimeSlots(w, r)

	resp := decodeResponse(t, w.Body.Bytes())
	assert.False(t, resp.Success)
	assert.Equal(t, "no time slots available for this date", resp.Message)
}
