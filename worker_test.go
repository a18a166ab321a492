package garnet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestWorkerDo(t *testing.T) {
	w := NewWorker(WithHeapSlots(64))
	defer w.Stop()

	v, err := w.Do(context.Background(), func(r *Ruby) (any, error) {
		a := ArrayFromSlice(r, []int{1, 2, 3})
		return a.Join(r, "+")
	})
	if err != nil || v != "1+2+3" {
		t.Errorf("Do() = %v, %v, want 1+2+3", v, err)
	}

	_, err = w.Do(context.Background(), func(r *Ruby) (any, error) {
		return TryConvert[int](r, Nil)
	})
	if !errors.Is(err, ErrConversion) {
		t.Errorf("Do() error = %v, want ErrConversion", err)
	}
}

func TestWorkerSerializesJobs(t *testing.T) {
	w := NewWorker()
	defer w.Stop()

	var counter Value
	if _, err := w.Do(context.Background(), func(r *Ruby) (any, error) {
		h := r.NewHash()
		r.Leak(h)
		counter = h.AsValue()
		return nil, h.Aset(r, "n", 0)
	}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Do(context.Background(), func(r *Ruby) (any, error) {
				h, _ := RHashFromValue(r, counter)
				v, _ := h.Get(r, "n")
				n, _ := TryConvert[int](r, v)
				return nil, h.Aset(r, "n", n+1)
			})
		}()
	}
	wg.Wait()

	n, err := w.Do(context.Background(), func(r *Ruby) (any, error) {
		h, _ := RHashFromValue(r, counter)
		v, _ := h.Get(r, "n")
		return TryConvert[int](r, v)
	})
	if err != nil || n != 20 {
		t.Errorf("counter = %v, %v, want 20", n, err)
	}
}

func TestWorkerContext(t *testing.T) {
	w := NewWorker()
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := w.Do(ctx, func(*Ruby) (any, error) { return nil, nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("Do(cancelled) error = %v, want context.Canceled", err)
	}

	started, release := make(chan struct{}), make(chan struct{})
	go w.Do(context.Background(), func(*Ruby) (any, error) {
		close(started)
		<-release
		return nil, nil
	})
	<-started
	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := w.Do(ctx, func(*Ruby) (any, error) { return nil, nil })
	close(release)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Do behind a blocked job error = %v, want context.DeadlineExceeded", err)
	}
}

func TestWorkerPanicAndStop(t *testing.T) {
	w := NewWorker()

	_, err := w.Do(context.Background(), func(*Ruby) (any, error) {
		panic("job blew up")
	})
	wantErrContains(t, err, "panic in worker job: job blew up")

	v, err := w.Do(context.Background(), func(r *Ruby) (any, error) {
		return r.IntoValue(1).Inspect(r), nil
	})
	if err != nil || v != "1" {
		t.Errorf("Do after a panic = %v, %v, want 1", v, err)
	}

	w.Stop()
	w.Stop()
	if _, err := w.Do(context.Background(), func(*Ruby) (any, error) { return nil, nil }); !errors.Is(err, ErrWorkerStopped) {
		t.Errorf("Do after Stop error = %v, want ErrWorkerStopped", err)
	}
}
