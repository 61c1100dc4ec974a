package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNaira(t *testing.T) {
	cases := map[float64]string{
		0:          "₦0",
		999:        "₦999",
		1000:       "₦1,000",
		1250000:    "₦1,250,000",
		15000.6:    "₦15,001",
		-2500:      "-₦2,500",
		1234567890: "₦1,234,567,890",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNaira(in), "amount %v", in)
	}
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Lagos Island Terminal", ToTitleCase("lagos-island_terminal"))
	assert.Equal(t, "Port Harcourt", ToTitleCase("  PORT   harcourt "))
	assert.Equal(t, "Abuja", ToTitleCase("abuja--"))
	assert.Equal(t, "", ToTitleCase(" - _ "))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, UniqueStrings([]string{" a", "b", "", "a", "b "}))
	assert.Empty(t, UniqueStrings(nil))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "x", FirstNonEmpty("", "  ", "x", "y"))
	assert.Equal(t, "", FirstNonEmpty())
}

func TestParseDateTakesDatePortion(t *testing.T) {
	d, err := ParseDate("2025-07-01T23:15:00.000Z", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("07/01/2025", time.UTC)
	assert.Error(t, err)
}

func TestParseDateIgnoresOffset(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	d, err := ParseDate("2025-01-10T23:30:00Z", lagos)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, lagos), d)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Lagos to ABUJA", "abuja"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Enugu", "owerri"))
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "Mar 1, 2025, 9:30 AM", FormatDisplay("2025-03-01T09:30:00Z", time.UTC))
	assert.Equal(t, "Mar 1, 2025, 12:00 AM", FormatDisplay("2025-03-01", time.UTC))
	assert.Equal(t, Placeholder, FormatDisplay("not a date", time.UTC))
	assert.Equal(t, Placeholder, FormatDisplay("", time.UTC))
}

func TestLogFields(t *testing.T) {
	assert.Equal(t, "a=1 b=x", LogFields("a", 1, "b", "x", "dangling"))
}
