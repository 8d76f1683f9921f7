package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableWindows(t *testing.T) {
	windows := AvailableWindows()
	require.Len(t, windows, 12)
	assert.Equal(t, TimeWindow("09:00 - 10:00"), windows[0])
	assert.Equal(t, TimeWindow("20:00 - 21:00"), windows[len(windows)-1])
}

func TestTimeWindow_IsValid(t *testing.T) {
	for _, w := range AvailableWindows() {
		assert.True(t, w.IsValid(), w)
	}
	assert.False(t, TimeWindow("08:00 - 09:00").IsValid())
	assert.False(t, TimeWindow("21:00 - 22:00").IsValid())
	assert.False(t, TimeWindow("25:00 - 27:00").IsValid())
	assert.False(t, TimeWindow("").IsValid())
}

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeWindow
		wantErr bool
	}{
		{"canonical form", "09:00 - 10:00", TimeWindow("09:00 - 10:00"), false},
		{"no spaces", "10:00-11:00", TimeWindow("10:00 - 11:00"), false},
		{"single digit hour", "9:00 - 10:00", TimeWindow("09:00 - 10:00"), false},
		{"last slot", "20:00 - 21:00", TimeWindow("20:00 - 21:00"), false},
		{"out of range hours", "25:00-27:00", "", true},
		{"before opening", "08:00 - 09:00", "", true},
		{"after closing", "21:00 - 22:00", "", true},
		{"two hour block", "10:00 - 12:00", "", true},
		{"partial hours", "09:30 - 10:30", "", true},
		{"garbage", "soon", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeWindow(tt.input)
			if tt.wantErr {
				assertDomainErrorCode(t, err, "INVALID_TIME_WINDOW")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDeliveryDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	t.Run("today is valid", func(t *testing.T) {
		assert.NoError(t, ValidateDeliveryDate(now, now))
	})

	t.Run("tomorrow is valid", func(t *testing.T) {
		assert.NoError(t, ValidateDeliveryDate(now.AddDate(0, 0, 1), now))
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		assertDomainErrorCode(t, ValidateDeliveryDate(now.AddDate(0, 0, -1), now), "INVALID_TIME_WINDOW")
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		assertDomainErrorCode(t, ValidateDeliveryDate(time.Time{}, now), "INVALID_TIME_WINDOW")
	})
}
