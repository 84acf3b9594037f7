package event

import "github.com/lixenwraith/pong-arena/constant"

// Queue is a fixed ring buffer of game events
// Single producer and consumer (the simulation tick); no synchronization
//
// Overflow: oldest events overwritten when full
type Queue struct {
	events [constant.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, advancing head when the ring is full
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&constant.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > constant.EventQueueSize {
		q.head = q.tail - constant.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		out = append(out, q.events[i&constant.EventBufferMask])
	}
	q.head = q.tail
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Reset drops pending events
func (q *Queue) Reset() {
	q.head = q.tail
}
