package domain

// AgendaItemStatus describes the lifecycle of one agenda item. The status
// itself is owned by the agenda collaborator; the engine only requests
// transitions on the current item.
type AgendaItemStatus int

const (
	// AgendaItemUnspecified represents an invalid agenda item status value.
	AgendaItemUnspecified AgendaItemStatus = iota
	// AgendaItemPending indicates the item has not been discussed.
	AgendaItemPending
	// AgendaItemCompleted indicates the item was discussed.
	AgendaItemCompleted
	// AgendaItemSkipped indicates the item was deferred to a later meeting.
	AgendaItemSkipped
)

// String returns the lowercase label for the agenda item status.
func (s AgendaItemStatus) String() string {
	switch s {
	case AgendaItemPending:
		return "pending"
	case AgendaItemCompleted:
		return "completed"
	case AgendaItemSkipped:
		return "skipped"
	default:
		return "unspecified"
	}
}

// AgendaItem is one entry of the meeting's ordered agenda, sourced from the
// agenda collaborator.
type AgendaItem struct {
	ID        string
	MeetingID string
	Title     string
	Presenter string
	Position  int
	Status    AgendaItemStatus
}
