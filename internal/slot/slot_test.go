package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	hours := []string{"09:00", "10:00", "11:00"}

	slots := Generate("c1", "2025-06-01", hours)

	require.Len(t, slots, 2)
	assert.Equal(t, "c1-2025-06-01-09:00", slots[0].ID)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "10:00", slots[1].StartTime)
	assert.Equal(t, "11:00", slots[1].EndTime)
	for _, s := range slots {
		assert.False(t, s.IsBooked)
		assert.Equal(t, "c1", s.VenueID)
		assert.Equal(t, "2025-06-01", s.Date)
	}
}

func TestGenerateFullDayGrid(t *testing.T) {
	hours := []string{
		"06:00", "07:00", "08:00", "09:00", "10:00", "11:00",
		"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
		"18:00", "19:00", "20:00", "21:00", "22:00",
	}

	slots := Generate("c2", "2025-06-01", hours)

	assert.Len(t, slots, len(hours)-1)
	assert.Equal(t, "06:00", slots[0].StartTime)
	assert.Equal(t, "22:00", slots[len(slots)-1].EndTime)
}

func TestGenerateIsDeterministic(t *testing.T) {
	hours := []string{"09:00", "10:00", "11:00"}

	first := Generate("c1", "2025-06-01", hours)
	second := Generate("c1", "2025-06-01", hours)

	assert.Equal(t, first, second)
}

func TestGenerateTooFewBoundaries(t *testing.T) {
	assert.Empty(t, Generate("c1", "2025-06-01", nil))
	assert.Empty(t, Generate("c1", "2025-06-01", []string{"09:00"}))
}

func TestIDFormat(t *testing.T) {
	assert.Equal(t, "c1-2025-06-01-17:00", ID("c1", "2025-06-01", "17:00"))
}
