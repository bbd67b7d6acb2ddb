// Package normalize resolves fields of a registration out of the loosely
// typed Weezevent payloads: form answers keyed by free-text labels, owner
// sub-record fields and top-level participant fields.
package normalize

import "strings"

// AnswerMap maps lower-cased, trimmed question labels to raw answer values.
type AnswerMap map[string]string

// Source is one candidate in a field's priority table: either a label to look
// up in the answer map (case-insensitive) or a literal fallback value.
type Source struct {
	label   string
	literal string
	isLabel bool
}

// Label makes a source that looks up l in the answer map.
func Label(l string) Source {
	return Source{label: l, isLabel: true}
}

// Literal makes a source that yields v directly.
func Literal(v string) Source {
	return Source{literal: v}
}

// Resolve returns the first source that yields a non-empty trimmed string.
//
// Note: the empty string doubles as "no source matched" and "a source matched
// but its value was blank". Callers cannot tell the two apart; this mirrors
// the upstream contract and is relied upon by the field priority tables.
func Resolve(answers AnswerMap, sources ...Source) string {
	for _, src := range sources {
		if src.isLabel {
			key := strings.ToLower(strings.TrimSpace(src.label))
			if raw, ok := answers[key]; ok {
				if v := strings.TrimSpace(raw); v != "" {
					return v
				}
			}
			continue
		}
		if v := strings.TrimSpace(src.literal); v != "" {
			return v
		}
	}
	return ""
}
