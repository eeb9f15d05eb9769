package bridge

import (
	"sync"
	"time"

	"github.com/tomvale/inkstone/internal/content"
)

const (
	defaultSubscriberCapacity = 100
	defaultBacklogLimit       = 50
	defaultDedupeWindow       = 256
)

// Logger records bridge diagnostics. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

// Option customizes Bridge construction.
type Option func(*Bridge)

// WithLogger injects a logger for drop and dispatch diagnostics.
func WithLogger(logger Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithSubscriberCapacity overrides the buffered channel size per subscriber.
func WithSubscriberCapacity(capacity int) Option {
	return func(b *Bridge) {
		if capacity > 0 {
			b.toUI.channelSize = capacity
			b.toHost.channelSize = capacity
		}
	}
}

// WithClock lets tests control envelope timestamps.
func WithClock(clock func() time.Time) Option {
	return func(b *Bridge) {
		if clock != nil {
			b.now = clock
		}
	}
}

// Bridge carries messages between the host and UI sides over two in-order
// pipes. Traffic posted before a side subscribes is held in a bounded backlog
// and flushed on subscription, so startup ordering between the two sides does
// not matter.
type Bridge struct {
	toUI   *pipe
	toHost *pipe
	logger Logger
	now    func() time.Time
}

// New constructs a bridge with sane defaults.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		toUI:   newPipe(),
		toHost: newPipe(),
		logger: nopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	b.toUI.logger = b.logger
	b.toHost.logger = b.logger
	return b
}

// PostToUI sends a host→UI message.
func (b *Bridge) PostToUI(msg Message) {
	b.toUI.deliver(newEnvelope(msg, b.now))
}

// PostToHost sends a UI→host message.
func (b *Bridge) PostToHost(msg Message) {
	b.toHost.deliver(newEnvelope(msg, b.now))
}

// SubscribeUI attaches a subscriber to host→UI traffic.
func (b *Bridge) SubscribeUI() Subscription {
	return b.toUI.subscribe()
}

// SubscribeHost attaches a subscriber to UI→host traffic.
func (b *Bridge) SubscribeHost() Subscription {
	return b.toHost.subscribe()
}

// Notifier adapts the bridge into the manager's outcome notification surface.
func (b *Bridge) Notifier() content.Notifier {
	return hostNotifier{bridge: b}
}

type hostNotifier struct {
	bridge *Bridge
}

func (n hostNotifier) ContentRefreshed(id content.ID, success bool) {
	n.bridge.PostToUI(ContentRefreshed{ID: id, Success: success})
}

func (n hostNotifier) StateChanged(documents map[content.ID]string) {
	n.bridge.PostToUI(StateSnapshot{Documents: documents})
}

// Subscription represents one attached consumer of a pipe.
type Subscription struct {
	Events <-chan Envelope
	cancel func()
}

// Close detaches the subscriber and closes its channel.
func (s Subscription) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Handler executes host-side operations requested by the UI.
type Handler interface {
	Refresh(id content.ID) error
}

// ServeHost drains UI→host traffic and dispatches it until the subscription
// closes. It is the top of the host call stack: unexpected operation failures
// stop here and are logged, matching the policy that expected conditions are
// absorbed lower down.
func ServeHost(sub Subscription, handler Handler, logger Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	for env := range sub.Events {
		switch msg := env.Msg.(type) {
		case RefreshRequest:
			if err := handler.Refresh(msg.ID); err != nil {
				logger.Printf("bridge: refresh %s: %v", msg.ID, err)
			}
		default:
			logger.Printf("bridge: unhandled host message %T", msg)
		}
	}
}

// pipe is one direction of the bridge: in-order delivery to each subscriber,
// a bounded pre-subscription backlog, and dedupe over recent envelope IDs so
// at-least-once transport never surfaces a message twice.
type pipe struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	backlog     []Envelope
	recentIDs   map[string]struct{}
	recentOrder []string
	channelSize int
	logger      Logger
}

func newPipe() *pipe {
	return &pipe{
		subscribers: map[*subscriber]struct{}{},
		recentIDs:   map[string]struct{}{},
		recentOrder: make([]string, 0, defaultDedupeWindow),
		channelSize: defaultSubscriberCapacity,
	}
}

func (p *pipe) subscribe() Subscription {
	sub := newSubscriber(p.channelSize, p.logger)
	p.mu.Lock()
	p.subscribers[sub] = struct{}{}
	backlog := p.backlog
	p.backlog = nil
	p.mu.Unlock()
	for _, env := range backlog {
		sub.send(env)
	}
	return Subscription{
		Events: sub.ch,
		cancel: func() { p.remove(sub) },
	}
}

func (p *pipe) deliver(env Envelope) {
	if env.ID != "" && p.isDuplicate(env.ID) {
		return
	}
	p.mu.Lock()
	if len(p.subscribers) == 0 {
		if len(p.backlog) >= defaultBacklogLimit {
			p.backlog = p.backlog[1:]
			if p.logger != nil {
				p.logger.Printf("bridge: backlog drop (limit %d)", defaultBacklogLimit)
			}
		}
		p.backlog = append(p.backlog, env)
		p.mu.Unlock()
		return
	}
	subs := make([]*subscriber, 0, len(p.subscribers))
	for sub := range p.subscribers {
		subs = append(subs, sub)
	}
	p.mu.Unlock()
	for _, sub := range subs {
		sub.send(env)
	}
}

func (p *pipe) remove(sub *subscriber) {
	p.mu.Lock()
	delete(p.subscribers, sub)
	p.mu.Unlock()
	sub.close()
}

func (p *pipe) isDuplicate(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.recentIDs[id]; ok {
		return true
	}
	p.recentIDs[id] = struct{}{}
	p.recentOrder = append(p.recentOrder, id)
	if len(p.recentOrder) > defaultDedupeWindow {
		oldest := p.recentOrder[0]
		p.recentOrder = p.recentOrder[1:]
		delete(p.recentIDs, oldest)
	}
	return false
}

type subscriber struct {
	ch     chan Envelope
	logger Logger

	mu     sync.Mutex
	closed bool
}

func newSubscriber(capacity int, logger Logger) *subscriber {
	if capacity <= 0 {
		capacity = defaultSubscriberCapacity
	}
	return &subscriber{
		ch:     make(chan Envelope, capacity),
		logger: logger,
	}
}

// send enqueues the envelope, dropping the oldest queued envelope when the
// subscriber is full. Order among delivered envelopes is preserved.
func (s *subscriber) send(env Envelope) {
	if s.isClosed() {
		return
	}
	select {
	case s.ch <- env:
	default:
		dropped := <-s.ch
		s.ch <- env
		if s.logger != nil {
			s.logger.Printf("bridge: dropped %T (queue overflow)", dropped.Msg)
		}
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

func (s *subscriber) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
