// Package pprint implements a document-algebra pretty printer in the style of
// Oppen and Kiselyov: build a [Doc] describing text, conditional line breaks,
// concatenation, grouping, and indentation, then call [PrettyPrint] to lay it
// out within a target page width.
//
// A [Doc] is immutable once built. Construct one from the five primitives
// ([Text], [Cond], [Concat], [Group], [Nest]) or from the derived combinators
// in combinators.go ([CommaSeparated], [ArgList], [DottedList], [FuncCall],
// [RDot]). [Doc] values are safe to share and to render more than once; unlike
// a mutable builder, building a [Doc] never mutates an existing one.
//
// [PrettyPrint] renders a [Doc] by running it through a small pipeline: the
// document is first turned into a linear stream of events (see stream.go),
// the stream is annotated with the column each event would reach in flat
// layout (see annotate.go), group-begin events are back-patched with their
// matching group-end's column (see correct.go), and finally the renderer
// consumes the corrected stream left to right, deciding per group whether it
// fits on the current line (see render.go).
//
// # Acknowledgments
//
// The document algebra, stream pipeline, and renderer are a Go port of the
// pretty printer described by Oppen[1] and refined by Kiselyov[2], as
// implemented in RethinkDB's pprint library.
//
// [1]: Oppen, D.C.: Prettyprinting. ACM Trans. Program. Lang. Syst. 2 (1980) 465-483.
// [2]: Kiselyov, O., Peyton-Jones, S. and Sabry, A.: Lazy v. Yield: Incremental,
// Linear Pretty-printing.
package pprint

import "fmt"

// Doc is an immutable node in the document algebra. It is one of five
// variants: [Text], [Cond], [Concat], [Group], or [Nest]. Doc values form a
// finite DAG with no cycles and can be freely shared across renders.
type Doc interface {
	// width is the flat-layout width: the number of columns this document
	// would occupy if no Cond inside it ever took its break branch.
	width() int

	fmt.Stringer
}

// Text is literal text. It contributes len(s) to the flat width of any
// document containing it.
type textDoc struct {
	s string
}

// Text returns a document holding literal text content.
func Text(s string) Doc {
	return textDoc{s: s}
}

func (t textDoc) width() int { return len(t.s) }

func (t textDoc) String() string {
	return fmt.Sprintf("Text(%q)", t.s)
}

// condDoc is a conditional break point: when its enclosing group fits flat it
// renders small; when the group breaks it renders tail on the line being
// closed, then a newline and indent, then cont to open the continuation line.
type condDoc struct {
	small, cont, tail string
}

// Cond returns a conditional break point. small is rendered when the
// enclosing group fits on the current line; cont opens the continuation
// line when it does not; tail, if given, is appended to the line being
// closed immediately before the break. Only the first tail argument is used;
// it defaults to "".
func Cond(small, cont string, tail ...string) Doc {
	var t string
	if len(tail) > 0 {
		t = tail[0]
	}
	return condDoc{small: small, cont: cont, tail: t}
}

func (c condDoc) width() int { return len(c.small) }

func (c condDoc) String() string {
	return fmt.Sprintf("Cond(%q, %q, %q)", c.small, c.cont, c.tail)
}

// concatDoc juxtaposes its children in order.
type concatDoc struct {
	children []Doc
}

// Concat returns the juxtaposition of ds in order. Concat() renders to the
// empty string at any width.
func Concat(ds ...Doc) Doc {
	return concatDoc{children: ds}
}

func (c concatDoc) width() int {
	w := 0
	for _, d := range c.children {
		w += d.width()
	}
	return w
}

func (c concatDoc) String() string {
	s := ""
	for _, d := range c.children {
		s += d.String()
	}
	return s
}

// groupDoc is a breaking scope: either every Cond inside it (not nested in
// an inner Group) renders flat, or every one of them breaks.
type groupDoc struct {
	child Doc
}

// Group marks child as a breaking scope: it is laid out flat if it fits the
// remaining width on the current line, or every direct Cond inside it (not
// nested inside an inner Group) breaks otherwise.
func Group(child Doc) Doc {
	return groupDoc{child: child}
}

func (g groupDoc) width() int { return g.child.width() }

func (g groupDoc) String() string {
	return fmt.Sprintf("Group(%s)", g.child)
}

// nestDoc is an indentation scope: any break inside child adopts the
// horizontal position at the point the Nest opened as its continuation
// indent.
type nestDoc struct {
	child Doc
}

// Nest marks child as an indentation scope. Any line break that fires
// inside child adopts the current horizontal position at the point the Nest
// opened as its continuation indent.
func Nest(child Doc) Doc {
	return nestDoc{child: child}
}

func (n nestDoc) width() int { return n.child.width() }

func (n nestDoc) String() string {
	return fmt.Sprintf("Nest(%s)", n.child)
}

// Shared singletons, safe to reuse across every call site and every
// invocation of PrettyPrint.
var (
	// Empty is Text(""): the identity element for Concat.
	Empty Doc = Text("")
	// Br is a breakable space: a single space when flat, nothing but a
	// line break and indent when broken.
	Br Doc = Cond(" ", "")
	// Dot is a breakable '.': a literal dot when flat, a dot carried to
	// the continuation line when broken.
	Dot Doc = Cond(".", ".")
)
