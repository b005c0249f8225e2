package pprint_test

import (
	"testing"

	"github.com/go-pp/pprint"
	"github.com/teleivo/assertive/assert"
)

// TestScenarios checks the concrete scenarios from spec.md §8 (S1-S6).
func TestScenarios(t *testing.T) {
	tests := map[string]struct {
		width int
		in    pprint.Doc
		want  string
	}{
		"S1_FuncCallFitsFlat": {
			80,
			pprint.FuncCall("f", pprint.Text("a"), pprint.Text("b")),
			"f(a, b)",
		},
		"S2_FuncCallBreaks": {
			3,
			pprint.FuncCall("f", pprint.Text("a"), pprint.Text("b")),
			"f(a,\n  b)",
		},
		"S3_DottedListFitsFlat": {
			80,
			pprint.DottedList(pprint.Text("r"), pprint.Text("x"), pprint.Text("y")),
			"r.x.y",
		},
		"S4_DottedListBreaks": {
			3,
			pprint.DottedList(pprint.Text("r"), pprint.Text("x"), pprint.Text("y")),
			"r.x\n .y",
		},
		"S5_GroupFitsFlat": {
			10,
			pprint.Group(pprint.Concat(pprint.Text("abc"), pprint.Br, pprint.Text("def"))),
			"abc def",
		},
		"S6_GroupBreaks": {
			5,
			pprint.Group(pprint.Concat(pprint.Text("abc"), pprint.Br, pprint.Text("def"))),
			"abc\ndef",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := pprint.PrettyPrint(tt.width, tt.in)
			assert.Equals(t, got, tt.want, "PrettyPrint(%d, %s)", tt.width, tt.in)
		})
	}
}

// TestRDotScenario checks the r_dot convenience combinator against the same shape as
// S3/S4 but built via RDot instead of an explicit leading Text("r").
func TestRDotScenario(t *testing.T) {
	tests := map[string]struct {
		width int
		want  string
	}{
		"Flat":   {80, "r.x.y"},
		"Broken": {3, "r.x\n .y"},
	}

	doc := pprint.RDot(pprint.Text("x"), pprint.Text("y"))
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := pprint.PrettyPrint(tt.width, doc)
			assert.Equals(t, got, tt.want, "PrettyPrint(%d, RDot(x, y))", tt.width)
		})
	}
}

// TestPrettyPrintIsReentrant checks that rendering the same Doc (built with
// the shared Br singleton) twice at one width gives the same result, and
// that a later render at another width is unaffected by them: per spec.md §5,
// PrettyPrint carries no cross-invocation state and Doc values are
// read-only.
func TestPrettyPrintIsReentrant(t *testing.T) {
	doc := pprint.Group(pprint.Concat(pprint.Text("abc"), pprint.Br, pprint.Text("def")))

	first := pprint.PrettyPrint(5, doc)
	second := pprint.PrettyPrint(5, doc)
	assert.Equals(t, first, second, "rendering the same Doc twice should be deterministic")

	wide := pprint.PrettyPrint(80, doc)
	assert.Equals(t, wide, "abc def", "an earlier render must not have mutated doc")
}
