// Package profiling accumulates per-frame CPU time by named section.
//
// Usage:
//
//	defer profiling.Track("scene.Control")()
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track starts timing name and returns the function that stops it.
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame drops the totals of the previous frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot copies the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every section whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN lists the n slowest sections, e.g. "renderer.Draw:4.2ms, scene.Control:0.3ms".
func TopN(n int) string {
	snap := Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if snap[names[i]] != snap[names[j]] {
			return snap[names[i]] > snap[names[j]]
		}
		return names[i] < names[j]
	})
	if n < len(names) {
		names = names[:n]
	}
	parts := make([]string, len(names))
	for i, name := range names {
		ms := float64(snap[name].Microseconds()) / 1000
		parts[i] = name + ":" + strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
	}
	return strings.Join(parts, ", ")
}
