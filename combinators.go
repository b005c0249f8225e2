package pprint

// CommaSeparated joins ds with ",", Br in between, wrapped in a Nest so that
// continuation lines (when breaks fire) align under the first element.
// CommaSeparated() returns Empty.
func CommaSeparated(ds ...Doc) Doc {
	if len(ds) == 0 {
		return Empty
	}

	children := make([]Doc, 0, len(ds)*3-2)
	children = append(children, ds[0])
	for _, d := range ds[1:] {
		children = append(children, Text(","), Br, d)
	}
	return Nest(Concat(children...))
}

// ArgList wraps ds in parentheses, comma-separated.
func ArgList(ds ...Doc) Doc {
	return Concat(Text("("), CommaSeparated(ds...), Text(")"))
}

// DottedList joins ds with '.', breaking on every dot but the first (breaking
// on the first dot reads poorly). Continuation lines align under the second
// element's dot, via an inner Nest that opens right after the first element.
// DottedList() returns Empty; DottedList(d) returns Nest(d).
func DottedList(ds ...Doc) Doc {
	if len(ds) == 0 {
		return Empty
	}
	if len(ds) == 1 {
		return Nest(ds[0])
	}

	rest := make([]Doc, 0, 2*(len(ds)-1))
	rest = append(rest, Text("."), ds[1])
	for _, d := range ds[2:] {
		rest = append(rest, Dot, d)
	}
	return Concat(ds[0], Nest(Concat(rest...)))
}

// FuncCall renders name followed by an ArgList of args.
func FuncCall(name string, args ...Doc) Doc {
	return Concat(Text(name), ArgList(args...))
}

// RDot is DottedList with a leading literal "r", as in the conventional
// r.foo.bar chain.
func RDot(args ...Doc) Doc {
	return DottedList(append([]Doc{Text("r")}, args...)...)
}
