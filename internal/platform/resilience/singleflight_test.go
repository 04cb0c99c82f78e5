package resilience

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do(context.Background(), "genre:list", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_WaiterHonorsContext(t *testing.T) {
	var g SingleFlight
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do(context.Background(), "season:list", func() (any, error) {
			close(started)
			<-release
			return "late", nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err, shared := g.Do(ctx, "season:list", func() (any, error) {
		t.Error("joined call must not run its own function")
		return nil, nil
	})
	close(release)

	if !shared || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected shared deadline error, got shared=%v err=%v", shared, err)
	}
}

func TestSingleFlight_RecoversPanic(t *testing.T) {
	var g SingleFlight

	_, err, _ := g.Do(context.Background(), "team:list", func() (any, error) {
		panic("boom")
	})
	if !errors.Is(err, ErrLoaderPanicked) {
		t.Fatalf("expected panic error, got %v", err)
	}

	// The key is free again after the panic.
	val, err, _ := g.Do(context.Background(), "team:list", func() (any, error) {
		return 7, nil
	})
	if err != nil || val != 7 {
		t.Fatalf("unexpected result after panic: %v, %v", val, err)
	}
}
