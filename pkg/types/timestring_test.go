package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("accepts HH:MM", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:30")
		require.NoError(t, err)
		assert.Equal(t, "10:30", ts.String())
	})

	t.Run("truncates seconds", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:30:45")
		require.NoError(t, err)
		assert.Equal(t, "10:30", ts.String())
	})

	t.Run("rejects invalid formats", func(t *testing.T) {
		for _, bad := range []string{"", "24:00", "10:60", "9:00", "10-30", "abc"} {
			_, err := NewTimeStringFromString(bad)
			assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", bad)
		}
	})
}

func TestTimeStringValidate(t *testing.T) {
	assert.NoError(t, TimeString("23:59").Validate())
	assert.ErrorIs(t, TimeString("25:00").Validate(), ErrInvalidFormat)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidFormat)
}

func TestTimeStringHMAndHMS(t *testing.T) {
	assert.Equal(t, TimeString("10:30"), TimeString("10:30:45").HM())
	assert.Equal(t, TimeString("10:30"), TimeString("10:30").HM())
	assert.Equal(t, "10:30:00", TimeString("10:30").HMS())
	assert.Equal(t, "10:30:45", TimeString("10:30:45").HMS())
}
