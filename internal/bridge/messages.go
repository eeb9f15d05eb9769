// Package bridge is the single logical pipe between the host side and the UI
// side. Delivery is reliable, in-order, and at-least-once; envelopes carry a
// generated ID so redelivered traffic is deduplicated before it reaches a
// subscriber. Responses correlate to requests by content identifier only —
// there is no per-request token, so overlapping refreshes for one identifier
// are indistinguishable to the UI. That matches the protocol contract and is
// documented rather than fixed.

package bridge

import (
	"time"

	"github.com/google/uuid"
	"github.com/tomvale/inkstone/internal/content"
)

// Message is one unit of UI↔host traffic.
type Message interface {
	isMessage()
}

// RefreshRequest asks the host to re-read and rewrite a content document.
// UI → host.
type RefreshRequest struct {
	ID content.ID
}

// ContentRefreshed reports the outcome of a refresh round trip. Host → UI.
type ContentRefreshed struct {
	ID      content.ID
	Success bool
}

// StateSnapshot is the full state push issued after any content mutation.
// Host → UI.
type StateSnapshot struct {
	Documents map[content.ID]string
}

func (RefreshRequest) isMessage()   {}
func (ContentRefreshed) isMessage() {}
func (StateSnapshot) isMessage()    {}

// Envelope wraps a message with transport metadata.
type Envelope struct {
	ID     string
	SentAt time.Time
	Msg    Message
}

func newEnvelope(msg Message, now func() time.Time) Envelope {
	return Envelope{
		ID:     uuid.NewString(),
		SentAt: now(),
		Msg:    msg,
	}
}
