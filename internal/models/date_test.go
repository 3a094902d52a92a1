package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophcal/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"01/05/2024", "1/5/2024", "01-05-2024", "1.5.2024", "2024-05-01", "  01/05/2024\n"} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseDate(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "31/02/2024", "2024/05/01", "13/13/2024"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			require.ErrorIs(t, err, common.ErrInvalidDate)
		})
	}
}

func TestDay_TruncatesToUTCMidnight(t *testing.T) {
	in := time.Date(2024, 5, 1, 23, 59, 0, 0, time.FixedZone("X", 3*3600))
	got := Day(in)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)
}
