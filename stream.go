package pprint

import "fmt"

// The document tree is convenient to build, but the annotator, corrector,
// and renderer all want a flat, forward-only sequence: an in-order traversal
// that replaces nested Group/Nest structure with explicit begin/end markers.
// generate walks doc and pushes its stream events onto sink, one at a time,
// so the whole stream never needs to exist in memory at once.

// event is one of the six stream event kinds: textEvent, condEvent, nBegEvent,
// nEndEvent, gBegEvent, gEndEvent.
type event interface {
	fmt.Stringer
}

// hpos is the absolute horizontal position an event reaches, assuming flat
// layout from the start of the stream. It is unset (posSet == false) for
// gBegEvent until the corrector back-patches it, and is never set for
// nBegEvent.
type hpos struct {
	pos    int
	posSet bool
}

func setPos(pos int) hpos { return hpos{pos: pos, posSet: true} }

func (h hpos) String() string {
	if !h.posSet {
		return "-1"
	}
	return fmt.Sprint(h.pos)
}

type textEvent struct {
	payload string
	hpos    hpos
}

func (t textEvent) String() string {
	return fmt.Sprintf("TE(%q,%s)", t.payload, t.hpos)
}

type condEvent struct {
	small, tail, cont string
	hpos              hpos
}

func (c condEvent) String() string {
	return fmt.Sprintf("CE(%q,%q,%q,%s)", c.small, c.tail, c.cont, c.hpos)
}

type nBegEvent struct{}

func (n nBegEvent) String() string { return "NBeg(-1)" }

type nEndEvent struct {
	hpos hpos
}

func (n nEndEvent) String() string { return fmt.Sprintf("NEnd(%s)", n.hpos) }

type gBegEvent struct {
	hpos hpos
}

func (g gBegEvent) String() string { return fmt.Sprintf("GBeg(%s)", g.hpos) }

type gEndEvent struct {
	hpos hpos
}

func (g gEndEvent) String() string { return fmt.Sprintf("GEnd(%s)", g.hpos) }

// eventSink receives stream events one at a time. Each pipeline stage is a
// sink that wraps the next stage: it either forwards events immediately or
// buffers them briefly before forwarding, per spec.md's four-stage pipeline.
type eventSink interface {
	emit(e event)
}

// generate pushes doc's stream events onto next in document order.
func generate(doc Doc, next eventSink) {
	switch d := doc.(type) {
	case textDoc:
		next.emit(textEvent{payload: d.s})
	case condDoc:
		next.emit(condEvent{small: d.small, tail: d.tail, cont: d.cont})
	case concatDoc:
		for _, child := range d.children {
			generate(child, next)
		}
	case groupDoc:
		next.emit(gBegEvent{})
		generate(d.child, next)
		next.emit(gEndEvent{})
	case nestDoc:
		// The inner Group is not optional: the indentation anchor only
		// matters when a break actually fires, and Group is the unit that
		// decides whether breaks fire. Without it, Nest applied to a
		// document with no Group of its own would never break.
		next.emit(nBegEvent{})
		next.emit(gBegEvent{})
		generate(d.child, next)
		next.emit(gEndEvent{})
		next.emit(nEndEvent{})
	default:
		panic(fmt.Sprintf("generate: unhandled Doc variant %T", doc))
	}
}
