package prescan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// hint is a uniform record of either hint kind, for ordering checks.
type hint struct {
	Kind        string // "sc" or "bool"
	Name        string
	SelfClosing bool
	Index       int
	Boolean     bool
}

func collectAll(input string, decision bool) (hints []hint, fallback bool, reason Reason) {
	sc := func(name []byte, selfClosing bool) {
		hints = append(hints, hint{Kind: "sc", Name: string(name), SelfClosing: selfClosing})
	}
	ba := func(index int, boolean bool) {
		hints = append(hints, hint{Kind: "bool", Index: index, Boolean: boolean})
	}
	if decision {
		fallback, reason = ShouldFallback([]byte(input), sc, ba)
		return hints, fallback, reason
	}
	ScanHints([]byte(input), sc, ba)
	return hints, false, ReasonNone
}

func TestScanHints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []hint
	}{
		{"no hints", "<p>hello</p>", nil},
		{"empty input", "", nil},
		{"boolean without value", "<input disabled>", []hint{{Kind: "bool", Index: 9, Boolean: true}}},
		{"boolean with value", `<input checked="yes">`, []hint{{Kind: "bool", Index: 3}}},
		{"classified self-closing suppressed", "<br/>", nil},
		{"custom self-closing", "<custom/>", []hint{{Kind: "sc", Name: "custom", SelfClosing: true}}},
		{"custom open tag", "<custom>", []hint{{Kind: "sc", Name: "custom"}}},
		{"custom name lowercased", "<MyWidget/>", []hint{{Kind: "sc", Name: "mywidget", SelfClosing: true}}},
		{"sc hint precedes boolean hints", "<custom checked>", []hint{
			{Kind: "sc", Name: "custom"},
			{Kind: "bool", Index: 3, Boolean: true},
		}},
		{"document order", `<input disabled><widget hidden="h"/><input checked>`, []hint{
			{Kind: "bool", Index: 9, Boolean: true},
			{Kind: "sc", Name: "widget", SelfClosing: true},
			{Kind: "bool", Index: 11},
			{Kind: "bool", Index: 3, Boolean: true},
		}},

		// Hint-only mode tolerates everything the decision mode rejects.
		{"no tags at all", "plain text", nil},
		{"null bytes tolerated", "a\x00b<input disabled>", []hint{{Kind: "bool", Index: 9, Boolean: true}}},
		{"namespaced tag tolerated", "<x:y><input checked>", []hint{
			{Kind: "sc", Name: "x:y"},
			{Kind: "bool", Index: 3, Boolean: true},
		}},
		{"bad nesting tolerated", "<b><i></b></i><input checked>", []hint{{Kind: "bool", Index: 3, Boolean: true}}},
		{"row without table tolerated", "<tr><td><input checked>", []hint{{Kind: "bool", Index: 3, Boolean: true}}},
		{"triple-dash comment tolerated", "<!--- x --><input checked>", []hint{{Kind: "bool", Index: 3, Boolean: true}}},
		{"stray angle tolerated", "< <input checked>", []hint{{Kind: "bool", Index: 3, Boolean: true}}},
		{"unterminated comment stops silently", "<input disabled><!-- x", []hint{{Kind: "bool", Index: 9, Boolean: true}}},
		{"unterminated tag stops silently", "<input disabled><p class", []hint{{Kind: "bool", Index: 9, Boolean: true}}},
		{"malformed attrs tolerated", `<p ="x"><input checked>`, []hint{{Kind: "bool", Index: 3, Boolean: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := collectAll(tt.input, false)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestScanHintsCollect(t *testing.T) {
	var sc []string
	hints := ScanHintsCollect([]byte(`<custom/><input disabled checked="c">`), func(name []byte, selfClosing bool) {
		sc = append(sc, string(name))
	})
	assert.Equal(t, []string{"custom"}, sc)
	assert.Empty(t, cmp.Diff([]BooleanHint{{9, true}, {3, false}}, hints))

	assert.Empty(t, ScanHintsCollect(nil, nil))
	assert.Empty(t, ScanHintsCollect([]byte("no tags"), nil))
}

// Hint-only and collect variants agree on the boolean stream.
func TestScanHintsCollectEquivalence(t *testing.T) {
	inputs := []string{
		"<input disabled>",
		`<a checked><b hidden="h"><c readonly>`,
		"<table><tr><td><input checked></td></tr></table>",
		"bad \x00 input <p foo=>ok",
	}
	for _, input := range inputs {
		var viaCallback []BooleanHint
		ScanHints([]byte(input), nil, func(index int, boolean bool) {
			viaCallback = append(viaCallback, BooleanHint{index, boolean})
		})
		collected := ScanHintsCollect([]byte(input), nil)
		assert.Empty(t, cmp.Diff(viaCallback, collected), input)
	}
}

// On inputs the decision mode accepts, its hint stream is a subsequence of
// the hint-only stream, in the same order. (Hint-only mode may emit more:
// it does not skip raw text, for example.)
func TestDecisionHintsSubsetOfScanHints(t *testing.T) {
	inputs := []string{
		"<p>hello</p>",
		"<input disabled>",
		`<input checked="yes">`,
		"<custom checked disabled/>",
		`<widget a=1 hidden><input checked>text<span selected></span>`,
		"<table><tr><td><input multiple></td></tr></table>",
		"<script>ignored <input checked></script><input disabled>",
		"<html><head><meta charset=utf-8></head><body><input checked></body></html>",
	}
	for _, input := range inputs {
		decisionHints, fallback, reason := collectAll(input, true)
		assert.False(t, fallback, input)
		assert.Equal(t, ReasonNone, reason, input)
		onlyHints, _, _ := collectAll(input, false)

		// subsequence check
		j := 0
		for _, h := range decisionHints {
			found := false
			for j < len(onlyHints) {
				if onlyHints[j] == h {
					found = true
					j++
					break
				}
				j++
			}
			assert.True(t, found, "hint %+v missing or out of order in %q", h, input)
		}
	}
}

func TestScanTagEnd(t *testing.T) {
	tests := []struct {
		input       string
		nameEnd     int
		gt          int
		selfClosing bool
		found       bool
	}{
		{"<p>", 2, 2, false, true},
		{"<p/>", 2, 3, true, true},
		{"<p />", 2, 4, true, true},
		{"<p a=1>", 2, 6, false, true},
		{"<p a=1/>", 2, 7, true, true},
		{`<p a="1>">`, 2, 9, false, true},
		{`<p a="1/">`, 2, 9, false, true},
		{"<p a=1/ >", 2, 8, true, true},
		{"<p a=1", 2, 6, false, false},
		{`<p a="1`, 2, 7, false, false},
	}
	for _, tt := range tests {
		gt, selfClosing, found := scanTagEnd([]byte(tt.input), tt.nameEnd)
		assert.Equal(t, tt.gt, gt, tt.input)
		assert.Equal(t, tt.selfClosing, selfClosing, tt.input)
		assert.Equal(t, tt.found, found, tt.input)
	}
}
