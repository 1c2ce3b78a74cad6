// Package sync is the engine's boundary with the realtime transport.
//
// The transport itself (websocket fan-out, reconnect, backoff) lives in a
// separate service; this package owns the channel contract between that
// transport and the room engine. Presence messages arrive on an inbound
// channel and are folded into the engine one at a time; settled state
// snapshots flow back out on an outbound channel.
package sync

import (
	"context"

	"google.golang.org/grpc/status"

	"github.com/MochamaB/eboard/internal/platform/errors"
	"github.com/MochamaB/eboard/internal/room/engine"
)

// Gateway pumps presence updates into an engine and state changes out of it.
type Gateway struct {
	engine   *engine.Engine
	inbound  chan engine.PresenceUpdate
	outbound chan engine.Notification
}

// NewGateway wires a gateway to an engine. Buffer sizes the inbound and
// outbound channels; presence bursts larger than the buffer apply
// backpressure to the transport.
func NewGateway(e *engine.Engine, buffer int) *Gateway {
	if buffer < 1 {
		buffer = 1
	}
	return &Gateway{
		engine:   e,
		inbound:  make(chan engine.PresenceUpdate, buffer),
		outbound: make(chan engine.Notification, buffer),
	}
}

// Inbound is the channel the transport writes presence updates to.
func (g *Gateway) Inbound() chan<- engine.PresenceUpdate {
	return g.inbound
}

// Outbound is the channel the transport reads settled state changes from.
func (g *Gateway) Outbound() <-chan engine.Notification {
	return g.outbound
}

// Run pumps messages until the context is cancelled. It marks the session's
// sync status connected for its lifetime and disconnected on the way out.
// Presence updates the engine rejects (unknown participant, frozen session)
// are dropped; the transport reports them to the sender, not to the room.
func (g *Gateway) Run(ctx context.Context) error {
	subID, changes := g.engine.Subscribe()
	defer g.engine.Unsubscribe(subID)

	g.engine.SetSyncStatus(true)
	defer g.engine.SetSyncStatus(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-g.inbound:
			_ = g.engine.UpdatePresence(ctx, update)
		case n, ok := <-changes:
			if !ok {
				return nil
			}
			select {
			case g.outbound <- n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// WireError is the transport-facing shape of a rejected action.
type WireError struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewWireError localizes an engine error for one participant's wire session.
func NewWireError(err error, locale string) WireError {
	handled := errors.HandleError(err, locale)
	return WireError{
		Code:     string(errors.GetCode(err)),
		Message:  status.Convert(handled).Message(),
		Metadata: errors.GetMetadata(err),
	}
}
