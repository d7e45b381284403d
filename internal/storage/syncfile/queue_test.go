package syncfile

import (
	"errors"
	"sync"
	"testing"

	"github.com/yndnr/syncvault-go/internal/telemetry/logger"
)

func newTestQueue() *queue {
	return newQueue(logger.Default(), nil)
}

func TestQueue_FIFO(t *testing.T) {
	q := newTestQueue()
	defer q.close()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 100; i++ {
		i := i
		q.enqueue("job", func() error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}

	// The barrier runs after everything enqueued before it.
	if err := q.barrier("barrier", func() error { return nil }); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 100 {
		t.Fatalf("executed %d jobs, want 100", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestQueue_CompletionChannel(t *testing.T) {
	q := newTestQueue()
	defer q.close()

	wantErr := errors.New("boom")
	if err := <-q.enqueue("failing", func() error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("completion err = %v, want %v", err, wantErr)
	}
	if err := <-q.enqueue("ok", func() error { return nil }); err != nil {
		t.Fatalf("completion err = %v, want nil", err)
	}
}

func TestQueue_CloseDrainsPending(t *testing.T) {
	q := newTestQueue()

	var mu sync.Mutex
	ran := 0
	for i := 0; i < 10; i++ {
		q.enqueue("job", func() error {
			mu.Lock()
			ran++
			mu.Unlock()
			return nil
		})
	}
	q.close()

	mu.Lock()
	defer mu.Unlock()
	if ran != 10 {
		t.Fatalf("ran = %d jobs before stop, want 10", ran)
	}
}

func TestQueue_EnqueueAfterClose(t *testing.T) {
	q := newTestQueue()
	q.close()

	if err := <-q.enqueue("late", func() error { return nil }); !errors.Is(err, ErrStoreClosed) {
		t.Fatalf("err = %v, want ErrStoreClosed", err)
	}

	// close is idempotent.
	q.close()
}
