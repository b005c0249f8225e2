package pprint

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

// pipe runs doc through the generator and annotator and returns the
// resulting stream, without the corrector.
func pipe(doc Doc) []event {
	var sink collectSink
	a := &annotator{next: &sink}
	generate(doc, a)
	return sink.events
}

func TestCorrector(t *testing.T) {
	tests := map[string]struct {
		in   Doc
		want string
	}{
		"NoGroups": {
			Concat(Text("a"), Text("b")),
			`TE("a",1) TE("b",2)`,
		},
		"SingleGroup": {
			Group(Concat(Text("a"), Text("b"))),
			`GBeg(2) TE("a",1) TE("b",2) GEnd(2)`,
		},
		"NestedGroups": {
			Group(Concat(Text("ab"), Group(Text("cd")), Text("ef"))),
			`GBeg(6) TE("ab",2) GBeg(4) TE("cd",4) GEnd(4) TE("ef",6) GEnd(6)`,
		},
		"SiblingGroups": {
			Concat(Group(Text("ab")), Group(Text("cd"))),
			`GBeg(2) TE("ab",2) GEnd(2) GBeg(4) TE("cd",4) GEnd(4)`,
		},
		"NestAroundGroup": {
			Nest(Group(Text("x"))),
			`NBeg(-1) GBeg(1) GBeg(1) TE("x",1) GEnd(1) GEnd(1) NEnd(1)`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var sink collectSink
			c := &corrector{next: &sink}
			for _, e := range pipe(tt.in) {
				c.emit(e)
			}
			assert.Equals(t, dumpEvents(sink.events), tt.want, "corrector(%s)", tt.in)
		})
	}
}
