package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mnemo-dev/mnemo/format"
)

func TestInterval(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{0, "Now"},
		{0.04, "1h"},
		{0.25, "6h"},
		{0.5, "12h"},
		{1, "1 day"},
		{2, "2 days"},
		{29, "29 days"},
		{30, "1 month"},
		{45, "2 months"},
		{60, "2 months"},
		{180, "6 months"},
		{364, "12 months"},
		{365, "1 year"},
		{548, "1.5 years"},
		{730, "2 years"},
		{1095, "3 years"},
		{820, "2 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.Interval(tt.days), "days=%v", tt.days)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{59, "59s"},
		{60, "1m"},
		{90, "1m 30s"},
		{600, "10m"},
		{3599, "59m 59s"},
		{3600, "1h"},
		{3660, "1h 1m"},
		{3661, "1h 1m"}, // seconds disappear once hours show
		{7200, "2h"},
		{7321, "2h 2m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.Duration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{65, "01:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{36000, "10:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, format.Time(tt.seconds), "seconds=%d", tt.seconds)
	}
}
