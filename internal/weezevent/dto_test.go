package weezevent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"string", `"abc"`, "abc"},
		{"integer", `123`, "123"},
		{"large integer keeps all digits", `9007199254740993`, "9007199254740993"},
		{"float", `12.5`, "12.5"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexString
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			assert.Equal(t, tc.want, f.String())
		})
	}

	t.Run("object is rejected", func(t *testing.T) {
		var f FlexString
		assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &f))
	})
}

func TestFlexFloat(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(`25.5`), &f))
		assert.Equal(t, FlexFloat(25.5), f)
	})

	t.Run("numeric string with comma", func(t *testing.T) {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(`"12,50"`), &f))
		assert.Equal(t, FlexFloat(12.5), f)
	})

	t.Run("non-numeric string is rejected", func(t *testing.T) {
		var f FlexFloat
		assert.Error(t, json.Unmarshal([]byte(`"gratuit"`), &f))
	})
}

func TestParticipantRawField(t *testing.T) {
	var p Participant
	require.NoError(t, json.Unmarshal([]byte(`{
		"id_participant": 1,
		"montant_regle": "12,50",
		"prix": 25,
		"vide": null,
		"objet": {"nested": true}
	}`), &p))

	t.Run("string scalar", func(t *testing.T) {
		v, ok := p.RawField("montant_regle")
		require.True(t, ok)
		assert.Equal(t, "12,50", v)
	})

	t.Run("numeric scalar", func(t *testing.T) {
		v, ok := p.RawField("prix")
		require.True(t, ok)
		assert.Equal(t, "25", v)
	})

	t.Run("null reports absent", func(t *testing.T) {
		_, ok := p.RawField("vide")
		assert.False(t, ok)
	})

	t.Run("missing key reports absent", func(t *testing.T) {
		_, ok := p.RawField("no_such_field")
		assert.False(t, ok)
	})

	t.Run("non-scalar reports absent", func(t *testing.T) {
		_, ok := p.RawField("objet")
		assert.False(t, ok)
	})
}
