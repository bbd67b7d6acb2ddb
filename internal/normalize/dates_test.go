package normalize

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseDate(t *testing.T) {
	log := discardLogger()
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("all accepted formats parse to the same date", func(t *testing.T) {
		for _, raw := range []string{"15/03/2024", "2024-03-15", "15-03-2024"} {
			got := ParseDate(log, raw)
			require.NotNil(t, got, "format %q", raw)
			assert.True(t, got.Equal(want), "format %q parsed to %v", raw, got)
		}
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		got := ParseDate(log, "  2024-03-15 ")
		require.NotNil(t, got)
		assert.True(t, got.Equal(want))
	})

	t.Run("unparseable input yields nil without raising", func(t *testing.T) {
		assert.Nil(t, ParseDate(log, "March 15"))
		assert.Nil(t, ParseDate(log, "15.03.2024"))
		assert.Nil(t, ParseDate(log, "2024-13-45"))
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, ParseDate(log, ""))
		assert.Nil(t, ParseDate(log, "   "))
	})
}

func TestParseDateTime(t *testing.T) {
	log := discardLogger()
	want := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	t.Run("space and T separators both parse", func(t *testing.T) {
		for _, raw := range []string{"2024-03-15 09:30:00", "2024-03-15T09:30:00"} {
			got := ParseDateTime(log, raw)
			require.NotNil(t, got, "format %q", raw)
			assert.True(t, got.Equal(want), "format %q parsed to %v", raw, got)
		}
	})

	t.Run("date-only input is not a datetime", func(t *testing.T) {
		assert.Nil(t, ParseDateTime(log, "2024-03-15"))
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, ParseDateTime(log, ""))
	})
}
