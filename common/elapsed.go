package common

import (
	"fmt"
	"sync"
	"time"
)

type Duration time.Duration

type stopwatch struct {
	message string
	started time.Time
}

var (
	timeline   []string
	timelineMu sync.Mutex
	started    = time.Now()
)

func (it Duration) Truncate(granularity time.Duration) time.Duration {
	return time.Duration(it).Truncate(granularity)
}

func (it Duration) String() string {
	return fmt.Sprintf("%5.3f", time.Duration(it).Seconds())
}

func Stopwatch(form string, details ...interface{}) *stopwatch {
	message := fmt.Sprintf(form, details...)
	return &stopwatch{
		message: message,
		started: time.Now(),
	}
}

func (it *stopwatch) When() int64 {
	return it.started.Unix()
}

func (it *stopwatch) Elapsed() Duration {
	return Duration(time.Since(it.started))
}

func (it *stopwatch) Debug() Duration {
	elapsed := it.Elapsed()
	Debug("%v %v", it.message, elapsed)
	return elapsed
}

func (it *stopwatch) Report() Duration {
	elapsed := it.Elapsed()
	Log("%v %v", it.message, elapsed)
	return elapsed
}

// Timeline records a timestamped marker. Markers are only kept while tracing.
func Timeline(form string, details ...interface{}) {
	if !TraceFlag() {
		return
	}
	message := fmt.Sprintf(form, details...)
	timelineMu.Lock()
	defer timelineMu.Unlock()
	timeline = append(timeline, fmt.Sprintf("%v %s", Duration(time.Since(started)), message))
}

// Timelines returns a copy of the recorded markers.
func Timelines() []string {
	timelineMu.Lock()
	defer timelineMu.Unlock()
	result := make([]string, len(timeline))
	copy(result, timeline)
	return result
}
