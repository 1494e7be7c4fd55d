package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScheduledEvent is an action due at a point on the timers clock.
type ScheduledEvent struct {
	At   time.Duration
	Seq  uint64 // insertion order, breaks ties between equal At
	Fire func(*ecs.ECS)
}

// EventQueue is a min-heap of scheduled events ordered by (At, Seq).
// It implements container/heap.Interface.
type EventQueue []*ScheduledEvent

func (q EventQueue) Len() int { return len(q) }

func (q EventQueue) Less(i, j int) bool {
	if q[i].At == q[j].At {
		return q[i].Seq < q[j].Seq
	}
	return q[i].At < q[j].At
}

func (q EventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *EventQueue) Push(x any) {
	*q = append(*q, x.(*ScheduledEvent))
}

func (q *EventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// TimersData is the scheduler singleton. Now only moves forward.
type TimersData struct {
	Now     time.Duration
	Pending EventQueue
	NextSeq uint64
}

var Timers = donburi.NewComponentType[TimersData]()
