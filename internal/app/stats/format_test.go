package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00:00"},
		{1, "0:00:01"},
		{59, "0:00:59"},
		{60, "0:01:00"},
		{3599, "0:59:59"},
		{3600, "1:00:00"},
		{36747, "10:12:27"},
		{90000, "25:00:00"},
		{1.5, "0:00:01.500000"},
		{0.0000004, "0:00:00"},
		{59.9999996, "0:01:00"},
		{100.0 / 3.0, "0:00:33.333333"},
		{-61, "-0:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "1:01:01", FormatSeconds(3661))
}
