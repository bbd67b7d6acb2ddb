package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	answers := AnswerMap{
		"telephone":   "0601020304",
		"ville":       "  Marseille ",
		"code postal": "",
	}

	t.Run("first matching label wins", func(t *testing.T) {
		got := Resolve(answers, Label("telephone"), Label("portable"), Literal("fallback"))
		assert.Equal(t, "0601020304", got)
	})

	t.Run("label lookup is case-insensitive", func(t *testing.T) {
		got := Resolve(answers, Label("Telephone"))
		assert.Equal(t, "0601020304", got)
	})

	t.Run("values are trimmed", func(t *testing.T) {
		got := Resolve(answers, Label("ville"))
		assert.Equal(t, "Marseille", got)
	})

	t.Run("missing label falls through to literal", func(t *testing.T) {
		got := Resolve(answers, Label("adresse"), Literal("12 rue du Port"))
		assert.Equal(t, "12 rue du Port", got)
	})

	t.Run("blank literal falls through", func(t *testing.T) {
		got := Resolve(answers, Literal("   "), Literal("next"))
		assert.Equal(t, "next", got)
	})

	t.Run("nothing resolves to empty string", func(t *testing.T) {
		got := Resolve(answers, Label("adresse"), Literal(""))
		assert.Equal(t, "", got)
	})

	// Known ambiguity: a label whose answer is blank and a label that does
	// not exist both resolve to "". Callers cannot tell the cases apart;
	// this mirrors the upstream contract and must not be "fixed" silently.
	t.Run("present-but-blank is indistinguishable from absent", func(t *testing.T) {
		blank := Resolve(answers, Label("code postal"))
		absent := Resolve(answers, Label("no such question"))
		assert.Equal(t, "", blank)
		assert.Equal(t, blank, absent)
	})

	t.Run("nil answer map only uses literals", func(t *testing.T) {
		got := Resolve(nil, Label("telephone"), Literal("direct"))
		assert.Equal(t, "direct", got)
	})
}
