package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomvale/inkstone/internal/bridge"
	"github.com/tomvale/inkstone/internal/content"
)

// bannerExpiredMsg fires when a success banner's display window ends. The
// generation stamp lets the coordinator ignore timers armed before a rebind
// or superseded by a newer banner.
type bannerExpiredMsg struct {
	id  content.ID
	gen int
}

// Coordinator tracks the one outstanding refresh request for its bound
// content document and the transient success banner that follows it.
//
// States: idle, refreshing, and idle with the success banner showing.
// Responses correlate by content identifier only; when several refreshes for
// the same identifier overlap, any matching response completes the machine.
// A lost response leaves it refreshing until the user refreshes again — there
// is deliberately no timeout on the host round trip.
type Coordinator struct {
	id        content.ID
	post      func(bridge.Message)
	bannerFor time.Duration

	refreshing bool
	banner     bool
	timerGen   int
}

// NewCoordinator binds a coordinator to a document. post sends UI→host
// messages over the bridge.
func NewCoordinator(id content.ID, post func(bridge.Message), bannerFor time.Duration) Coordinator {
	if bannerFor <= 0 {
		bannerFor = 3 * time.Second
	}
	if post == nil {
		post = func(bridge.Message) {}
	}
	return Coordinator{id: id, post: post, bannerFor: bannerFor}
}

// Refresh marks the document as refreshing and issues the request. The state
// change is synchronous; only the send happens in the returned command.
func (c Coordinator) Refresh() (Coordinator, tea.Cmd) {
	c.refreshing = true
	c.banner = false
	c.timerGen++
	post, id := c.post, c.id
	return c, func() tea.Msg {
		post(bridge.RefreshRequest{ID: id})
		return nil
	}
}

// Update consumes refresh responses and banner timer messages. Messages for
// other documents or from stale timers leave the state untouched.
func (c Coordinator) Update(msg tea.Msg) (Coordinator, tea.Cmd) {
	switch msg := msg.(type) {
	case bridge.ContentRefreshed:
		if msg.ID != c.id {
			return c, nil
		}
		c.refreshing = false
		if !msg.Success {
			c.banner = false
			return c, nil
		}
		c.banner = true
		c.timerGen++
		id, gen := c.id, c.timerGen
		return c, tea.Tick(c.bannerFor, func(time.Time) tea.Msg {
			return bannerExpiredMsg{id: id, gen: gen}
		})
	case bannerExpiredMsg:
		if msg.id != c.id || msg.gen != c.timerGen {
			return c, nil
		}
		c.banner = false
		return c, nil
	}
	return c, nil
}

// Rebind resets the machine for a new document, discarding in-flight refresh
// tracking and invalidating any pending banner timer.
func (c Coordinator) Rebind(id content.ID) Coordinator {
	c.id = id
	c.refreshing = false
	c.banner = false
	c.timerGen++
	return c
}

// BoundTo returns the document the coordinator currently tracks.
func (c Coordinator) BoundTo() content.ID { return c.id }

// Refreshing reports whether a refresh request is outstanding.
func (c Coordinator) Refreshing() bool { return c.refreshing }

// ShowSuccessBanner reports whether the transient success banner is visible.
func (c Coordinator) ShowSuccessBanner() bool { return c.banner }
