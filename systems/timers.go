package systems

import (
	"container/heap"
	"time"

	"github.com/automoto/arena-duel/components"
	"github.com/yohamta/donburi/ecs"
)

// Schedule runs fire once delay has elapsed on the timers clock. Events due
// at the same instant fire in the order they were scheduled.
func Schedule(ecs *ecs.ECS, delay time.Duration, fire func(*ecs.ECS)) {
	timers := getOrCreateTimers(ecs)
	if delay < 0 {
		delay = 0
	}
	heap.Push(&timers.Pending, &components.ScheduledEvent{
		At:   timers.Now + delay,
		Seq:  timers.NextSeq,
		Fire: fire,
	})
	timers.NextSeq++
}

// AdvanceTime moves the clock forward by elapsed and fires every event that
// became due, earliest first. Events scheduled while firing are honoured
// within the same call if they are already due.
func AdvanceTime(ecs *ecs.ECS, elapsed time.Duration) {
	timers := getOrCreateTimers(ecs)
	if elapsed > 0 {
		timers.Now += elapsed
	}
	for timers.Pending.Len() > 0 && timers.Pending[0].At <= timers.Now {
		ev := heap.Pop(&timers.Pending).(*components.ScheduledEvent)
		ev.Fire(ecs)
		timers = getOrCreateTimers(ecs)
	}
}

// Now returns the current timers clock.
func Now(ecs *ecs.ECS) time.Duration {
	return getOrCreateTimers(ecs).Now
}

// PendingEvents reports how many scheduled events have not fired yet.
func PendingEvents(ecs *ecs.ECS) int {
	return getOrCreateTimers(ecs).Pending.Len()
}
