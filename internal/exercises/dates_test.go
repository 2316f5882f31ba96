package exercises

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]time.Time{
		"Mon Jan 01 2024": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"Sun Jan 01 2023": time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		"Fri Dec 01 2023": time.Date(2023, 12, 1, 23, 59, 0, 0, time.UTC),
		"Thu Sep 05 2024": time.Date(2024, 9, 5, 3, 0, 0, 0, time.FixedZone("CEST", 2*3600)),
	}
	for want, in := range cases {
		require.Equal(t, want, FormatDate(in))
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-01-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate(" 2023-06-01T18:30:00Z ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), got)

	// offset timestamps land on their UTC day
	got, err = ParseDate("2023-06-01T23:30:00-02:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"yesterday", "2023-13-01", "01/02/2023", ""} {
		_, err := ParseDate(in)
		require.Error(t, err, in)
	}
}

func TestToday(t *testing.T) {
	late := time.Date(2024, 2, 29, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Today(late))
	require.Equal(t, "Fri Mar 01 2024", FormatDate(Today(late)))
}
