package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/jmod/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeNotifier = (*Notifier)(nil)

type subscription struct {
	path string
	fn   func()
}

// Notifier maps changed paths to the callbacks subscribed to them.
type Notifier struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]subscription
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uint64]subscription)}
}

// WatchPath registers fn for path. fn runs when path, an ancestor of it or
// anything below it changes.
func (n *Notifier) WatchPath(path string, fn func()) (ports.Subscription, error) {
	if path == "" || fn == nil {
		return nil, zerr.With(domain.ErrWatchFailed, "path", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", path)
	}

	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = subscription{path: abs, fn: fn}
	n.mu.Unlock()

	var once sync.Once
	return ports.SubscriptionFunc(func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
		})
	}), nil
}

// Len returns the number of live subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Dispatch runs every callback whose path is related to one of the changed
// paths and returns how many ran. Each callback runs at most once per call,
// outside the notifier lock.
func (n *Notifier) Dispatch(paths []string) int {
	n.mu.Lock()
	var fns []func()
	for _, sub := range n.subs {
		for _, changed := range paths {
			if related(sub.path, filepath.Clean(changed)) {
				fns = append(fns, sub.fn)
				break
			}
		}
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}

	return len(fns)
}

// Pump feeds events through a debouncer until the sequence ends or ctx is done.
// Every batch is dispatched to subscribers before after is called with it.
// Batches are handled one at a time and Pump returns once the last one is done.
func (n *Notifier) Pump(ctx context.Context, events iter.Seq[ports.WatchEvent], window time.Duration, after func(paths []string)) {
	debouncer := NewDebouncer(window, func(paths []string) {
		n.Dispatch(paths)
		if after != nil {
			after(paths)
		}
	})
	defer debouncer.Flush()

	for event := range events {
		if ctx.Err() != nil {
			return
		}
		debouncer.Add(event.Path)
	}
}

// related reports whether a and b are the same path or one contains the other.
func related(a, b string) bool {
	if a == b {
		return true
	}
	sep := string(filepath.Separator)
	return strings.HasPrefix(a, strings.TrimSuffix(b, sep)+sep) ||
		strings.HasPrefix(b, strings.TrimSuffix(a, sep)+sep)
}
