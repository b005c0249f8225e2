package pprint

import (
	"strings"

	"github.com/go-pp/pprint/internal/assert"
)

// renderer consumes the fully corrected stream left to right and produces
// the output string. It tracks a small stack of indentation anchors (one
// per open Nest) and a "fitting" counter of currently-open groups that have
// already been determined to render flat; nested groups inherit a fitting
// ancestor's flatness without re-measuring.
type renderer struct {
	width     int // configured page width
	rightEdge int // right margin in the stream's absolute coordinates
	fitting   int // count of enclosing groups known to fit
	hpos      int // current output column
	indent    []int
	result    strings.Builder
}

func newRenderer(width int) *renderer {
	return &renderer{width: width, rightEdge: width}
}

func (r *renderer) emit(e event) {
	switch ev := e.(type) {
	case textEvent:
		r.result.WriteString(ev.payload)
		r.hpos += len(ev.payload)
	case condEvent:
		if r.fitting != 0 {
			r.result.WriteString(ev.small)
			r.hpos += len(ev.small)
			return
		}
		r.result.WriteString(ev.tail)
		r.result.WriteByte('\n')
		r.result.WriteString(strings.Repeat(" ", r.topIndent()))
		r.result.WriteString(ev.cont)
		r.hpos = r.topIndent() + len(ev.cont)
		// ev.hpos is still in the stream's never-breaks coordinate system;
		// re-anchor rightEdge by the same delta so later hpos comparisons
		// stay a single subtraction, per spec.md's renderer rationale.
		r.rightEdge = (r.width - r.hpos) + ev.hpos.pos
	case gBegEvent:
		if r.fitting != 0 || ev.hpos.pos <= r.rightEdge {
			r.fitting++
		} else {
			r.fitting = 0
		}
	case gEndEvent:
		if r.fitting != 0 {
			r.fitting--
		}
	case nBegEvent:
		r.indent = append(r.indent, r.hpos)
	case nEndEvent:
		assert.That(len(r.indent) > 0, "renderer: nEndEvent without a matching nBegEvent")
		r.indent = r.indent[:len(r.indent)-1]
	}
}

func (r *renderer) topIndent() int {
	if len(r.indent) == 0 {
		return 0
	}
	return r.indent[len(r.indent)-1]
}

// PrettyPrint lays out doc so that it fits within width columns where
// possible, breaking at doc's Cond points and indenting continuation lines
// per its Nest scopes where it does not, and returns the result.
//
// width must be non-negative; width == 0 is permitted and causes every Cond
// to break.
func PrettyPrint(width int, doc Doc) string {
	r := newRenderer(width)
	c := &corrector{next: r}
	a := &annotator{next: c}
	generate(doc, a)
	return r.result.String()
}
