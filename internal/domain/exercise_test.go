package domain_test

import (
	"testing"
	"time"

	"github.com/michalina-sz/exercise-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := domain.ParseDate("2024-01-05")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	invalid := []string{
		"2024-1-5",
		"05-01-2024",
		"2024/01/05",
		"2024-13-01",
		"2024-01-32",
		"2024-01-05T10:00:00Z",
		"Jan 5 2024",
		"",
		"banana",
	}
	for _, input := range invalid {
		_, err := domain.ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mon Jan 01 2024", domain.FormatDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Fri Jan 05 2024", domain.FormatDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Tue Dec 31 2024", domain.FormatDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseFormatRoundTrip(t *testing.T) {
	date, err := domain.ParseDate("2024-02-29")

	require.NoError(t, err)
	assert.Equal(t, "Thu Feb 29 2024", domain.FormatDate(date))
}

func TestToday(t *testing.T) {
	today := domain.Today()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
}
