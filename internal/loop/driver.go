// Package loop turns a host's per-refresh callback into fixed-rate
// simulation ticks.
//
// The host calls back once per display refresh, usually well above the tick
// rate. The Driver skips refreshes until at least one tick interval has
// passed and carries the remainder over, so the tick count does not drift
// from wall-clock time.
package loop

import "time"

// DefaultTickRate is used when a non-positive rate is requested.
const DefaultTickRate = 60

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Duration
}

// SystemClock reports time elapsed since it was created, using the monotonic
// reading of time.Time.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the elapsed time since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Scheduler runs a callback on the next display refresh. The callback
// receives the refresh timestamp.
type Scheduler interface {
	RequestFrame(cb func(now time.Duration))
}

// Driver throttles refresh callbacks down to a fixed tick interval.
type Driver struct {
	interval time.Duration
	tick     func()
	sched    Scheduler
	last     time.Duration
	ticks    uint64
	stopped  bool
}

// NewDriver creates a driver that calls tick at most tickRate times per
// second of refresh time.
func NewDriver(tickRate int, tick func()) *Driver {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Driver{
		interval: time.Second / time.Duration(tickRate),
		tick:     tick,
	}
}

// Interval returns the target time between ticks.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Ticks returns how many ticks have run.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Start records the clock as the last tick time and arms the first refresh.
func (d *Driver) Start(clock Clock, sched Scheduler) {
	d.sched = sched
	d.last = clock.Now()
	if d.stopped {
		return
	}
	sched.RequestFrame(d.animate)
}

// animate is the per-refresh callback. It re-arms itself before doing any
// work and stops re-arming once the driver is stopped.
func (d *Driver) animate(now time.Duration) {
	if d.stopped {
		return
	}
	d.sched.RequestFrame(d.animate)
	d.Advance(now)
}

// Advance runs one tick if more than an interval has elapsed since the last
// one and reports whether it did. The remainder of the elapsed time beyond
// whole intervals is kept for the next decision.
func (d *Driver) Advance(now time.Duration) bool {
	elapsed := now - d.last
	if elapsed <= d.interval {
		return false
	}
	d.last = now - elapsed%d.interval
	d.ticks++
	d.tick()
	return true
}

// Stop ends the loop. It is terminal: the pending refresh returns without
// re-arming and a stopped driver cannot be restarted.
func (d *Driver) Stop() {
	d.stopped = true
}

// Stopped reports whether Stop has been called.
func (d *Driver) Stopped() bool {
	return d.stopped
}

// FrameQueue is a Scheduler for hosts that pull frames, such as a Bubble Tea
// tick message or an ebiten Update call. RequestFrame stores the callback and
// Fire runs it on the host's next refresh.
type FrameQueue struct {
	pending func(time.Duration)
}

// RequestFrame stores cb to run on the next Fire. A later request replaces
// an earlier one.
func (q *FrameQueue) RequestFrame(cb func(now time.Duration)) {
	q.pending = cb
}

// Armed reports whether a callback is waiting for the next refresh.
func (q *FrameQueue) Armed() bool {
	return q.pending != nil
}

// Fire runs the pending callback, if any, and reports whether one ran.
func (q *FrameQueue) Fire(now time.Duration) bool {
	cb := q.pending
	if cb == nil {
		return false
	}
	q.pending = nil
	cb(now)
	return true
}
