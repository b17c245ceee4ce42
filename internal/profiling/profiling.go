package profiling

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Lightweight per-frame CPU profiler. Only the render thread records samples.

var frameTotals = make(map[string]time.Duration)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		frameTotals[name] += time.Since(start)
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	clear(frameTotals)
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest entries of the current frame, slowest first.
// Example: "renderer.Render:4.2ms, grid.Render:3.9ms"
func TopN(n int) string {
	type entry struct {
		name string
		dur  time.Duration
	}
	list := make([]entry, 0, len(frameTotals))
	for k, v := range frameTotals {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur != list[j].dur {
			return list[i].dur > list[j].dur
		}
		return list[i].name < list[j].name
	})
	n = min(n, len(list))

	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		ms := float64(e.dur.Microseconds()) / 1000.0
		parts = append(parts, e.name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms")
	}
	return strings.Join(parts, ", ")
}
