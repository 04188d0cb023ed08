package util

import (
	"fmt"
	"math"
	"time"
)

type timerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func (t *timerState) averageDuration() float64 {
	return t.totalDuration / float64(t.executionCount)
}

func (t *timerState) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms\n> min: %.2fms, max: %.2fms", t.name, t.lastDuration, t.averageDuration(), t.minDuration, t.maxDuration)
}

// Timer collects per-stage frame timings, keyed by name.
type Timer struct {
	states     map[string]*timerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*timerState),
	}
}

func (t *Timer) String() string {
	var str string
	for _, name := range t.timerNames {
		str += t.states[name].String() + "\n"
	}
	return str
}

// Start begins measuring the named section and returns the stop func, which
// records the duration and returns it in milliseconds.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &timerState{
			name:        name,
			minDuration: math.MaxFloat64,
			maxDuration: -math.MaxFloat64,
		}
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.lastDuration = durationInMS
		state.totalDuration += durationInMS
		state.executionCount++
		if durationInMS < state.minDuration {
			state.minDuration = durationInMS
		}
		if durationInMS > state.maxDuration {
			state.maxDuration = durationInMS
		}
		return durationInMS
	}
}
