package engine

// EventType labels what changed in a notification.
type EventType string

const (
	EventSessionStarted    EventType = "session.started"
	EventSessionPaused     EventType = "session.paused"
	EventSessionResumed    EventType = "session.resumed"
	EventSessionEnded      EventType = "session.ended"
	EventParticipantJoined EventType = "participant.joined"
	EventParticipantLeft   EventType = "participant.left"
	EventPresenceUpdated   EventType = "presence.updated"
	EventCastingStarted    EventType = "casting.started"
	EventCastingStopped    EventType = "casting.stopped"
	EventCastingPage       EventType = "casting.page_changed"
	EventAgendaNavigated   EventType = "agenda.navigated"
	EventAgendaItemClosed  EventType = "agenda.item_closed"
	EventVoteCreated       EventType = "vote.created"
	EventVoteStarted       EventType = "vote.started"
	EventVoteClosed        EventType = "vote.closed"
	EventMinuteRecorded    EventType = "minute.recorded"
	EventSyncStatusChanged EventType = "sync.status_changed"
)

// Notification carries one settled snapshot to a subscriber together with
// the event that produced it.
type Notification struct {
	Event    EventType
	Snapshot Snapshot
}

// Subscribe registers a reader for state change notifications. The returned
// channel is buffered; when a slow reader falls behind the oldest pending
// notification is dropped, so a reader always converges on the latest
// snapshot. Callers must Unsubscribe when done.
func (e *Engine) Subscribe() (int, <-chan Notification) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextSubID++
	subID := e.nextSubID
	ch := make(chan Notification, 8)
	e.subscribers[subID] = ch
	return subID, ch
}

// Unsubscribe removes a reader and closes its channel.
func (e *Engine) Unsubscribe(subID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.unsubscribeLocked(subID)
}

func (e *Engine) unsubscribeLocked(subID int) {
	ch, ok := e.subscribers[subID]
	if !ok {
		return
	}
	delete(e.subscribers, subID)
	close(ch)
}

// notifyLocked fans the current snapshot out to every subscriber. Callers
// must hold e.mu, so every delivered snapshot is fully settled.
func (e *Engine) notifyLocked(event EventType) {
	if len(e.subscribers) == 0 {
		return
	}
	n := Notification{Event: event, Snapshot: e.snapshotLocked()}
	for _, ch := range e.subscribers {
		select {
		case ch <- n:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- n:
			default:
			}
		}
	}
}
