// Package toast implements the transient one-line notification surface.
package toast

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/applyx/internal/shared"
)

// DismissAfter is how long a toast stays visible.
const DismissAfter = 3000 * time.Millisecond

// Toast is the state of the notification surface.
type Toast struct {
	Message string
	Visible bool
}

// Notifier shows one message at a time. The last call wins and restarts the dismissal timer.
//
// Listeners observe changes in the order they were applied; emitMu is taken before mu and held until every listener
// has returned.
type Notifier struct {
	emitMu    sync.Mutex
	mu        sync.Mutex
	scheduler shared.Scheduler
	logger    *log.Logger
	current   Toast
	gen       uint64
	timer     shared.Timer
	listeners []func(Toast)
}

// New creates a [Notifier]. A nil scheduler uses wall-clock time.
func New(scheduler shared.Scheduler, logger *log.Logger) *Notifier {
	if scheduler == nil {
		scheduler = shared.RealScheduler{}
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Notifier{scheduler: scheduler, logger: shared.WithLogger(logger, "component", "toast")}
}

// OnChange registers fn to be called after every show or dismissal. fn must not call back into the Notifier.
func (n *Notifier) OnChange(fn func(Toast)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Notify replaces the visible message and schedules its dismissal.
func (n *Notifier) Notify(message string) {
	n.emitMu.Lock()
	defer n.emitMu.Unlock()

	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.current = Toast{Message: message, Visible: true}
	n.timer = n.scheduler.AfterFunc(DismissAfter, func() { n.dismiss(gen) })
	state, listeners := n.current, n.snapshot()
	n.mu.Unlock()

	n.logger.Info(message)
	emit(listeners, state)
}

// dismiss hides the toast shown by generation gen. A newer toast is left alone.
func (n *Notifier) dismiss(gen uint64) {
	n.emitMu.Lock()
	defer n.emitMu.Unlock()

	n.mu.Lock()
	if gen != n.gen || !n.current.Visible {
		n.mu.Unlock()
		return
	}
	n.current.Visible = false
	n.timer = nil
	state, listeners := n.current, n.snapshot()
	n.mu.Unlock()

	emit(listeners, state)
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.current.Visible {
		return "", false
	}
	return n.current.Message, true
}

// Close cancels the pending dismissal.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) snapshot() []func(Toast) {
	return append([]func(Toast){}, n.listeners...)
}

func emit(listeners []func(Toast), state Toast) {
	for _, fn := range listeners {
		fn(state)
	}
}
