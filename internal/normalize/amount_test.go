package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseAmount(t *testing.T) {
	log := discardLogger()

	t.Run("plain decimal", func(t *testing.T) {
		got := ParseAmount(log, "25.00")
		require.NotNil(t, got)
		assert.Equal(t, 25.0, *got)
	})

	t.Run("comma as decimal separator", func(t *testing.T) {
		got := ParseAmount(log, "12,50")
		require.NotNil(t, got)
		assert.Equal(t, 12.5, *got)
	})

	t.Run("unparseable value yields nil", func(t *testing.T) {
		assert.Nil(t, ParseAmount(log, "gratuit"))
	})

	t.Run("empty value yields nil", func(t *testing.T) {
		assert.Nil(t, ParseAmount(log, "  "))
	})
}

func TestResolveAmount(t *testing.T) {
	log := discardLogger()
	prices := map[string]float64{"77": 25.0}

	t.Run("primary field wins over base price", func(t *testing.T) {
		got := ResolveAmount(log, strPtr("12,50"), "77", prices)
		require.NotNil(t, got)
		assert.Equal(t, 12.5, *got)
	})

	t.Run("absent primary falls back to base price", func(t *testing.T) {
		got := ResolveAmount(log, nil, "77", prices)
		require.NotNil(t, got)
		assert.Equal(t, 25.0, *got)
	})

	t.Run("unparseable primary yields nil and skips fallback", func(t *testing.T) {
		assert.Nil(t, ResolveAmount(log, strPtr("n/a"), "77", prices))
	})

	t.Run("neither resolves yields nil", func(t *testing.T) {
		assert.Nil(t, ResolveAmount(log, nil, "88", prices))
	})

	t.Run("missing ticket id yields nil", func(t *testing.T) {
		assert.Nil(t, ResolveAmount(log, nil, "", prices))
	})
}
