package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHandler_HooksRunInReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []int
	h.OnShutdown(func(context.Context) error {
		order = append(order, 1)
		return nil
	})
	h.OnShutdown(func(context.Context) error {
		order = append(order, 2)
		return nil
	})

	h.Trigger()
	if err := h.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("hook order = %v, want [2 1]", order)
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done channel should be closed after Wait returns")
	}
}

func TestHandler_ReturnsLastHookError(t *testing.T) {
	h := NewHandler(time.Second)

	errFirst := errors.New("first")
	h.OnShutdown(func(context.Context) error { return errFirst })
	h.OnShutdown(func(context.Context) error { return nil })

	h.Trigger()
	if err := h.Wait(); !errors.Is(err, errFirst) {
		t.Fatalf("Wait err = %v, want %v", err, errFirst)
	}
}

func TestHandler_HookTimeout(t *testing.T) {
	h := NewHandler(50 * time.Millisecond)

	var deadlineSet bool
	h.OnShutdown(func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return nil
	})

	h.Trigger()
	if err := h.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !deadlineSet {
		t.Error("hook context should carry the shutdown deadline")
	}
}
