package scheduler

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// Half the chores are cancelled from separate goroutines while the engine is
// firing the rest. Every notice must end up delivered, cancelled or dropped,
// and never more than one of those.
func TestEngineCancelInterleavedWithSchedule(t *testing.T) {
	engine := NewEngine(4096)
	engine.Start()
	defer engine.Stop()

	const households = 6
	const choresEach = 250
	total := households * choresEach

	toCancel := make(chan string, total)
	var cancelled atomic.Int64
	var cancelledIDs sync.Map

	var schedulers, cancellers sync.WaitGroup
	for c := 0; c < 3; c++ {
		cancellers.Add(1)
		go func() {
			defer cancellers.Done()
			for id := range toCancel {
				if n := engine.Cancel(id); n > 0 {
					cancelled.Add(int64(n))
					cancelledIDs.Store(id, struct{}{})
				}
			}
		}()
	}

	start := time.Now().UTC()
	for h := 0; h < households; h++ {
		h := h
		schedulers.Add(1)
		go func() {
			defer schedulers.Done()
			for i := 0; i < choresEach; i++ {
				id := fmt.Sprintf("house%d-chore%d", h, i)
				err := engine.Schedule(DueNotice{
					TaskID:      id,
					Description: "Replace furnace filter",
					TriggerAt:   start.Add(time.Duration(20+(h*7+i)%60) * time.Millisecond),
				})
				if err != nil {
					t.Errorf("schedule %s: %v", id, err)
					return
				}
				if i%2 == 1 {
					toCancel <- id
				}
			}
		}()
	}

	allSettled := make(chan struct{})
	go func() {
		schedulers.Wait()
		close(toCancel)
		cancellers.Wait()
		close(allSettled)
	}()
	settled := allSettled

	received := make(map[string]int, total)
	delivered := 0
	deadline := time.After(5 * time.Second)
	done := false
	for !(done && delivered+int(cancelled.Load())+int(engine.Dropped()) == total) {
		select {
		case <-deadline:
			t.Fatalf("timeout: delivered=%d cancelled=%d dropped=%d total=%d",
				delivered, cancelled.Load(), engine.Dropped(), total)
		case <-settled:
			done = true
			settled = nil
		case ev, ok := <-engine.C():
			if !ok {
				t.Fatal("notice channel closed early")
			}
			received[ev.TaskID]++
			delivered++
		}
	}

	if cancelled.Load() == 0 {
		t.Fatal("expected some notices to be cancelled before firing")
	}
	for id, n := range received {
		if n != 1 {
			t.Fatalf("%s delivered %d times", id, n)
		}
		if _, ok := cancelledIDs.Load(id); ok {
			t.Fatalf("%s was both cancelled and delivered", id)
		}
	}
	if p := engine.Pending(); p != 0 {
		t.Fatalf("expected empty queue, got %d pending", p)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected extra notice %s", ev.TaskID)
	case <-time.After(100 * time.Millisecond):
	}
}
