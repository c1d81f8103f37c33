package profiling

import (
	"strings"
	"testing"
	"time"
)

func record(name string, d time.Duration) {
	mu.Lock()
	totals[name] += d
	mu.Unlock()
}

func TestSumAndTopN(t *testing.T) {
	ResetFrame()
	record("render.Draw", 4*time.Millisecond)
	record("render.HUD", time.Millisecond)
	record("scene.Control", 2*time.Millisecond)

	if got := SumWithPrefix("render."); got != 5*time.Millisecond {
		t.Errorf("SumWithPrefix = %v, want 5ms", got)
	}
	if got, want := TopN(2), "render.Draw:4.0ms, scene.Control:2.0ms"; got != want {
		t.Errorf("TopN = %q, want %q", got, want)
	}
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame kept totals")
	}
}

func TestTrackRecords(t *testing.T) {
	ResetFrame()
	stop := Track("test.Sleep")
	time.Sleep(time.Millisecond)
	stop()
	if d := Snapshot()["test.Sleep"]; d < time.Millisecond {
		t.Errorf("tracked %v, want at least 1ms", d)
	}
	if !strings.HasPrefix(TopN(5), "test.Sleep:") {
		t.Errorf("TopN = %q", TopN(5))
	}
}
