package settings

import (
	"context"
	"sync"
)

// subscriber pairs a delivery channel with the context that bounds the
// subscription's lifetime.
type subscriber struct {
	ch   chan ChangeEvent
	done <-chan struct{}
}

// changeFeed fans settings writes out to subscribers. The settings table is a
// single row, so the stream is coarse: each write produces one event carrying
// the full stored value. Delivery never blocks a writer; a subscriber that has
// not drained its buffer misses the event.
type changeFeed struct {
	mu   sync.Mutex
	subs []*subscriber
}

func (f *changeFeed) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		closed := make(chan ChangeEvent)
		close(closed)
		return closed, nil
	}

	sub := &subscriber{ch: make(chan ChangeEvent, 1), done: ctx.Done()}
	f.mu.Lock()
	f.subs = append(f.subs, sub)
	f.mu.Unlock()

	go func() {
		<-sub.done
		f.drop(sub)
	}()

	return sub.ch, nil
}

func (f *changeFeed) drop(target *subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, sub := range f.subs {
		if sub == target {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			close(sub.ch)
			return
		}
	}
}

func (f *changeFeed) publish(evt ChangeEvent) {
	f.mu.Lock()
	subs := make([]*subscriber, len(f.subs))
	copy(subs, f.subs)
	f.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- evt:
		default:
		}
	}
}
