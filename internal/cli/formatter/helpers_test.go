package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeksUntil(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		to   time.Time
		want string
	}{
		{"under two weeks in days", from.AddDate(0, 0, 9), "9 days"},
		{"two weeks exactly", from.AddDate(0, 0, 14), "2 weeks"},
		{"several months", from.AddDate(0, 0, 96), "13 weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeksUntil(from, tt.to))
		})
	}
}

func TestHours_TrimsTrailingZero(t *testing.T) {
	assert.Equal(t, "3h", Hours(3))
	assert.Equal(t, "6.5h", Hours(6.5))
	assert.Equal(t, "16.5h", Hours(16.5))
}

func TestMinutes(t *testing.T) {
	assert.Equal(t, "45m", Minutes(45))
	assert.Equal(t, "1h", Minutes(60))
	assert.Equal(t, "3h 15m", Minutes(195))
}

func TestRenderConfidence_Bands(t *testing.T) {
	// Content checks only; coloring depends on the terminal profile.
	assert.Contains(t, RenderConfidence(67, 10), "67%")
	assert.Contains(t, RenderConfidence(0, 10), "0%")
	assert.Contains(t, RenderConfidence(150, 10), "100%")
	assert.Contains(t, RenderConfidence(-5, 10), "0%")
}

func TestRenderBox_IncludesUppercasedTitle(t *testing.T) {
	out := RenderBox("Study Plan", "content")
	assert.Contains(t, out, "STUDY PLAN")
	assert.Contains(t, out, "content")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"PHASE", "WEEKS"},
		[][]string{
			{"Foundation Building", "1-3"},
			{"Assessment", "10"},
		},
	)

	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, "Foundation Building")
	assert.Contains(t, out, "Assessment")
}
