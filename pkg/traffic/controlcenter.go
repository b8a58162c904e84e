// Package traffic schedules the traffic lights of an intersection.
package traffic

import (
	"time"

	"github.com/ChicagoDave/roadworld/pkg/geo"
	"github.com/ChicagoDave/roadworld/pkg/markings"
)

// TickDuration is the scheduler resolution. Light states only change on
// tick boundaries.
const TickDuration = time.Second

// Default phase lengths, in ticks.
const (
	DefaultGreenTicks  = 2
	DefaultYellowTicks = 1
)

// Timing holds the green and yellow phase lengths in ticks.
type Timing struct {
	Green  int `json:"greenDuration" yaml:"greenDuration"`
	Yellow int `json:"yellowDuration" yaml:"yellowDuration"`
}

// DefaultTiming returns the default two-tick green, one-tick yellow cycle.
func DefaultTiming() Timing {
	return Timing{Green: DefaultGreenTicks, Yellow: DefaultYellowTicks}
}

// ControlCenter cycles the lights of one intersection so that at most one of
// them is green or yellow at any tick. A single light cycles green, yellow
// then holds red for Green ticks before turning green again.
type ControlCenter struct {
	Center geo.Point
	Lights []*markings.Light
	Timing Timing

	CurrentTick int
	// PreviousTimestamp is the last tick boundary consumed by Update, on the
	// caller's clock.
	PreviousTimestamp time.Duration
}

// New creates a control center at tick 0. start is the caller's current
// timestamp; the first Update is measured from it.
func New(center geo.Point, lights []*markings.Light, timing Timing, start time.Duration) *ControlCenter {
	c := &ControlCenter{
		Center:            center,
		Lights:            lights,
		Timing:            timing,
		PreviousTimestamp: start,
	}
	c.setAll(markings.Red)
	c.apply()
	return c
}

// Ticks returns the length of a full cycle in ticks.
func (c *ControlCenter) Ticks() int {
	phase := c.Timing.Green + c.Timing.Yellow
	switch len(c.Lights) {
	case 0:
		return 0
	case 1:
		return phase + c.Timing.Green
	default:
		return len(c.Lights) * phase
	}
}

// Update advances the schedule to timestamp. Calls less than a tick after the
// last consumed boundary do nothing; larger gaps advance by every whole tick
// elapsed, and the leftover fraction carries into the next call.
func (c *ControlCenter) Update(timestamp time.Duration) {
	ticks := c.Ticks()
	if ticks <= 0 {
		return
	}
	delta := timestamp - c.PreviousTimestamp
	if delta < TickDuration {
		return
	}
	c.setAll(markings.Red)
	c.PreviousTimestamp = timestamp - delta%TickDuration
	c.CurrentTick = (c.CurrentTick + int(delta/TickDuration)) % ticks
	c.apply()
}

// apply lights the active lamp for CurrentTick. All lights must be red.
func (c *ControlCenter) apply() {
	phase := c.Timing.Green + c.Timing.Yellow
	if len(c.Lights) == 0 || phase <= 0 {
		return
	}
	idx := c.CurrentTick / phase
	if len(c.Lights) == 1 && idx > 0 {
		// Red hold at the end of a single-light cycle.
		c.Lights[0].State = markings.Red
		return
	}
	if c.CurrentTick%phase < c.Timing.Green {
		c.Lights[idx].State = markings.Green
	} else {
		c.Lights[idx].State = markings.Yellow
	}
}

func (c *ControlCenter) setAll(state markings.LightState) {
	for _, l := range c.Lights {
		l.State = state
	}
}

// States returns the current state of each light, in order.
func (c *ControlCenter) States() []markings.LightState {
	out := make([]markings.LightState, len(c.Lights))
	for i, l := range c.Lights {
		out[i] = l.State
	}
	return out
}
