package pprint

import "github.com/go-pp/pprint/internal/assert"

// corrector back-patches each gBegEvent's hpos with the column at which its
// matching gEndEvent arrives: exactly the column the renderer must compare
// against its right edge to decide whether the group fits.
//
// It buffers every event seen while at least one group is open, one buffer
// per currently open group, organized as a stack. While the stack is empty,
// events pass straight through. A gBegEvent pushes a new buffer without
// emitting anything yet. A gEndEvent pops the top buffer: if the stack is
// now empty, it flushes a corrected gBegEvent, the buffered contents, then
// itself; otherwise it splices the corrected gBegEvent and the buffered
// contents onto the new top buffer instead of flushing.
type corrector struct {
	next    eventSink
	buffers [][]event
}

func (c *corrector) push(e event) {
	if len(c.buffers) == 0 {
		c.next.emit(e)
		return
	}
	top := len(c.buffers) - 1
	c.buffers[top] = append(c.buffers[top], e)
}

func (c *corrector) emit(e event) {
	switch ev := e.(type) {
	case textEvent:
		assert.That(ev.hpos.posSet, "corrector: textEvent arrived without hpos")
		c.push(ev)
	case condEvent:
		assert.That(ev.hpos.posSet, "corrector: condEvent arrived without hpos")
		c.push(ev)
	case nEndEvent:
		assert.That(ev.hpos.posSet, "corrector: nEndEvent arrived without hpos")
		c.push(ev)
	case nBegEvent:
		c.push(ev)
	case gBegEvent:
		assert.That(!ev.hpos.posSet, "corrector: gBegEvent arrived with hpos already set")
		c.buffers = append(c.buffers, nil)
	case gEndEvent:
		assert.That(ev.hpos.posSet, "corrector: gEndEvent arrived without hpos")
		n := len(c.buffers) - 1
		assert.That(n >= 0, "corrector: gEndEvent without a matching gBegEvent")
		buf := c.buffers[n]
		c.buffers = c.buffers[:n]

		corrected := gBegEvent{hpos: ev.hpos}
		if len(c.buffers) == 0 {
			c.next.emit(corrected)
			for _, buffered := range buf {
				c.next.emit(buffered)
			}
			c.next.emit(ev)
		} else {
			top := len(c.buffers) - 1
			c.buffers[top] = append(c.buffers[top], corrected)
			c.buffers[top] = append(c.buffers[top], buf...)
			c.buffers[top] = append(c.buffers[top], ev)
		}
	}
}
